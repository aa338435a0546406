package customer

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/HaniMe9/abe-garage-hani/internal/transport"
	"github.com/HaniMe9/abe-garage-hani/pkg/logger"
)

type ServiceAPI interface {
	GetByID(id int64) (*Customer, error)
	List(limit, offset int) ([]*Customer, error)
	Search(term string) ([]*Customer, error)
	Update(id int64, dto UpdateCustomerDTO) (*Customer, error)
	Deactivate(id int64) error
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

// List handles GET /customer with optional ?search=, ?limit=, ?offset=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if term := r.URL.Query().Get("search"); term != "" {
		customers, err := h.Service.Search(term)
		if err != nil {
			h.WriteAppError(w, err)
			return
		}
		h.WriteSuccess(w, http.StatusOK, "customers retrieved", customers)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	customers, err := h.Service.List(limit, offset)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, "customers retrieved", customers)
}

// Get handles GET /customer/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	c, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, "customer retrieved", c)
}

// Update handles PUT /customer/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	var dto UpdateCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.Update(id, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, "customer updated", c)
}

// Deactivate handles DELETE /customer/{id}.
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	if err := h.Service.Deactivate(id); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, "customer deactivated", nil)
}
