package auth

import (
	"log/slog"
	"net/http"

	"github.com/HaniMe9/abe-garage-hani/internal"
	"github.com/HaniMe9/abe-garage-hani/internal/transport"
)

// RoleGate enforces role allow-lists on routes that already passed the
// auth middleware.
type RoleGate struct {
	base   *transport.BaseHandler
	logger *slog.Logger
}

func NewRoleGate(logger *slog.Logger) *RoleGate {
	return &RoleGate{
		base:   transport.NewBaseHandler(logger),
		logger: logger,
	}
}

// RequireRoles admits employee principals whose role is in the allow-list
// and rejects everyone else, customers included.
func (g *RoleGate) RequireRoles(allowed ...RoleName) func(http.Handler) http.Handler {
	allowSet := make(map[RoleName]struct{}, len(allowed))
	for _, role := range allowed {
		allowSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				g.base.WriteAppError(w, internal.ErrMissingToken)
				return
			}

			if claims.Kind != KindEmployee {
				g.logger.Warn("role gate rejected non-employee principal",
					"principal_id", claims.PrincipalID, "kind", claims.Kind)
				g.base.WriteAppError(w, internal.ErrForbidden)
				return
			}

			if _, ok := allowSet[claims.RoleName]; !ok {
				g.logger.Warn("role gate rejected employee",
					"principal_id", claims.PrincipalID,
					"role", claims.RoleName,
					"allowed", allowed)
				g.base.WriteAppError(w, internal.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdminTier gates admin-only routes.
func (g *RoleGate) RequireAdminTier() func(http.Handler) http.Handler {
	return g.RequireRoles(RoleAdmin, RoleManager)
}

// RequireEmployee admits any employee principal regardless of role.
func (g *RoleGate) RequireEmployee() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				g.base.WriteAppError(w, internal.ErrMissingToken)
				return
			}
			if claims.Kind != KindEmployee {
				g.base.WriteAppError(w, internal.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
