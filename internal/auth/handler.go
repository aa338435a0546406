package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/HaniMe9/abe-garage-hani/internal"
	"github.com/HaniMe9/abe-garage-hani/internal/metrics"
	"github.com/HaniMe9/abe-garage-hani/internal/transport"
	"github.com/HaniMe9/abe-garage-hani/pkg/logger"
)

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

// RegisterCustomer handles POST /auth/customer/register.
func (h *Handler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var dto RegisterCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	principal, err := h.Service.RegisterCustomer(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, "customer registered successfully", principal)
}

// RegisterEmployee handles POST /auth/employee/register and POST /register.
func (h *Handler) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	var dto RegisterEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	principal, err := h.Service.RegisterEmployee(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, "employee registered successfully", principal)
}

// LoginCustomer handles POST /auth/customer/login.
func (h *Handler) LoginCustomer(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, KindCustomer)
}

// LoginEmployee handles POST /auth/employee/login and POST /login.
func (h *Handler) LoginEmployee(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, KindEmployee)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, kind PrincipalKind) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteAppError(w, err)
		return
	}

	email, password := dto.Credentials()
	principal, err := h.Service.Authenticate(kind, email, password)
	if err != nil {
		h.Logger.Warn("login failed", "kind", kind, "email", email, "error", err)
		metrics.LoginsTotal.WithLabelValues(string(kind), "failure").Inc()
		h.WriteAppError(w, err)
		return
	}
	metrics.LoginsTotal.WithLabelValues(string(kind), "success").Inc()

	token, err := h.Service.IssueSession(principal)
	if err != nil {
		h.Logger.Error("failed to issue session token", "principal_id", principal.ID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to issue session token")
		return
	}

	h.WriteSuccess(w, http.StatusOK, "login successful", map[string]interface{}{
		"token":     token,
		"principal": principal,
	})
}

// Verify handles GET /auth/verify and GET /verify for an already
// authenticated request; the middleware has done the work.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "access token required")
		return
	}
	h.WriteSuccess(w, http.StatusOK, "token is valid", claims)
}

// AuthMiddleware verifies the bearer token and attaches the decoded claims
// to the request context. Rejected requests never reach the next handler.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteAppError(w, internal.ErrMissingToken)
			return
		}

		claims, err := h.Service.VerifyToken(token)
		if err != nil {
			// expiry vs signature mismatch is logged, both surface as 401
			h.Logger.Warn("token verification failed", "error", err)
			h.WriteAppError(w, err)
			return
		}

		ctx := ContextWithClaims(r.Context(), claims)
		ctx = logger.With(ctx, "principal_id", claims.PrincipalID, "kind", string(claims.Kind))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
