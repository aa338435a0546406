package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PrincipalKind tags which side of the shop a token belongs to. Claims carry
// the tag explicitly so employee-only fields can never be read off a
// customer session by accident.
type PrincipalKind string

const (
	KindCustomer PrincipalKind = "customer"
	KindEmployee PrincipalKind = "employee"
)

// Principal is the authenticated identity returned by the auth service.
// It never carries credential material.
type Principal struct {
	ID        int64         `json:"id"`
	Kind      PrincipalKind `json:"kind"`
	Email     string        `json:"email"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Phone     string        `json:"phone,omitempty"`
	Active    bool          `json:"active"`

	// Role fields are set for employees only.
	RoleID   int64    `json:"role_id,omitempty"`
	RoleName RoleName `json:"role_name,omitempty"`
}

// Claims is the JWT payload for a session token.
type Claims struct {
	PrincipalID int64         `json:"principal_id"`
	Kind        PrincipalKind `json:"kind"`
	Email       string        `json:"email"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	RoleID      *int64        `json:"role_id,omitempty"`
	RoleName    RoleName      `json:"role_name,omitempty"`
	jwt.RegisteredClaims
}

// IsAdminTier reports whether the claims belong to an employee in the
// admin tier (Admin or Manager).
func (c *Claims) IsAdminTier() bool {
	return c.Kind == KindEmployee && (c.RoleName == RoleAdmin || c.RoleName == RoleManager)
}

// TokenGenerator issues and verifies session tokens.
type TokenGenerator interface {
	IssueToken(p *Principal) (string, error)
	VerifyToken(tokenString string) (*Claims, error)
}

// ServiceAPI is the surface the HTTP layer depends on.
type ServiceAPI interface {
	RegisterCustomer(dto RegisterCustomerDTO) (*Principal, error)
	RegisterEmployee(dto RegisterEmployeeDTO) (*Principal, error)
	Authenticate(kind PrincipalKind, email, password string) (*Principal, error)
	IssueSession(p *Principal) (string, error)
	VerifyToken(tokenString string) (*Claims, error)
}

type ctxKey string

const contextClaimsKey ctxKey = "auth_claims"

// ContextWithClaims attaches verified claims to a request context.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextClaimsKey, claims)
}

// ClaimsFromContext retrieves the claims the middleware attached.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(contextClaimsKey).(*Claims)
	return claims, ok && claims != nil
}

// SessionTTL is the fixed lifetime of a session token when no override is
// configured. Re-login is required after expiry; there is no refresh path.
const SessionTTL = 24 * time.Hour
