package dashboard

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/HaniMe9/abe-garage-hani/internal"
	"github.com/HaniMe9/abe-garage-hani/internal/auth"
	"github.com/HaniMe9/abe-garage-hani/internal/transport"
	"github.com/HaniMe9/abe-garage-hani/pkg/logger"
)

type ServiceAPI interface {
	Overview(claims *auth.Claims) (*Overview, error)
	AdminStats() (*Stats, error)
	EmployeeStats(employeeID int64) (*EmployeeStats, error)
	CustomerStats(customerID int64) (*CustomerStats, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// Overview handles GET /dashboard for any authenticated employee.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrMissingToken)
		return
	}

	overview, err := h.Service.Overview(claims)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, "dashboard retrieved", overview)
}

// AdminStats handles GET /admin/stats.
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.AdminStats()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, "stats retrieved", stats)
}

// EmployeeStats handles GET /employee-stats/{id}.
func (h *Handler) EmployeeStats(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	stats, err := h.Service.EmployeeStats(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, "employee stats retrieved", stats)
}

// CustomerStats handles GET /customer-stats/{id}.
func (h *Handler) CustomerStats(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	stats, err := h.Service.CustomerStats(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, "customer stats retrieved", stats)
}
