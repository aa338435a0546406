package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/HaniMe9/abe-garage-hani/internal"
)

// CustomerRecord carries the persisted shape of a customer registration.
// The hash field is write-only; it never leaves the repository boundary.
type CustomerRecord struct {
	Email        string
	Phone        string
	PasswordHash string
	IdentityHash string
	FirstName    string
	LastName     string
}

// EmployeeRecord carries the persisted shape of an employee registration.
type EmployeeRecord struct {
	Email        string
	Phone        string
	PasswordHash string
	FirstName    string
	LastName     string
	RoleID       int64
}

// Credential is an authentication read: the principal joined with its
// stored hash. PasswordHash is empty when no credential row exists, which
// is a configuration error rather than a wrong password.
type Credential struct {
	Principal    Principal
	PasswordHash string
}

// Repository is the data access surface the auth service needs.
type Repository interface {
	CustomerEmailExists(email string) (bool, error)
	EmployeeEmailExists(email string) (bool, error)
	CreateCustomer(rec CustomerRecord) (int64, error)
	CreateEmployee(rec EmployeeRecord) (int64, error)
	GetCustomerCredential(email string) (*Credential, error)
	GetEmployeeCredential(email string) (*Credential, error)
	LoadRoles() ([]Role, error)
}

// Service orchestrates credential hashing, the entity store and the token
// generator for both principal kinds.
type Service struct {
	repo       Repository
	tokens     TokenGenerator
	roles      *RoleRegistry
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, tokens TokenGenerator, roles *RoleRegistry, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		tokens:     tokens,
		roles:      roles,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// RegisterCustomer hashes the password and persists identity plus profile
// in one transaction. Duplicate emails are scoped to customers.
func (s *Service) RegisterCustomer(dto RegisterCustomerDTO) (*Principal, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.CustomerEmailExists(dto.Email)
	if err != nil {
		return nil, internal.NewInternalError("failed to check existing customer", err)
	}
	if exists {
		return nil, internal.ErrDuplicateEmail
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	id, err := s.repo.CreateCustomer(CustomerRecord{
		Email:        dto.Email,
		Phone:        dto.Phone,
		PasswordHash: hash,
		IdentityHash: fmt.Sprintf("customer_%d", time.Now().UnixNano()),
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
	})
	if err != nil {
		s.logger.Error("customer registration failed", "email", dto.Email, "error", err)
		return nil, internal.NewInternalError("failed to register customer", err)
	}

	s.logger.Info("customer registered", "customer_id", id, "email", dto.Email)

	return &Principal{
		ID:        id,
		Kind:      KindCustomer,
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Phone:     dto.Phone,
		Active:    true,
	}, nil
}

// RegisterEmployee persists identity, profile, credential and role
// assignment atomically. The role must exist in the registry.
func (s *Service) RegisterEmployee(dto RegisterEmployeeDTO) (*Principal, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	role, ok := s.roles.ByID(dto.RoleID)
	if !ok {
		return nil, internal.ErrUnknownRole
	}

	exists, err := s.repo.EmployeeEmailExists(dto.Email)
	if err != nil {
		return nil, internal.NewInternalError("failed to check existing employee", err)
	}
	if exists {
		return nil, internal.ErrDuplicateEmail
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	id, err := s.repo.CreateEmployee(EmployeeRecord{
		Email:        dto.Email,
		Phone:        dto.Phone,
		PasswordHash: hash,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		RoleID:       role.ID,
	})
	if err != nil {
		s.logger.Error("employee registration failed", "email", dto.Email, "error", err)
		return nil, internal.NewInternalError("failed to register employee", err)
	}

	s.logger.Info("employee registered", "employee_id", id, "email", dto.Email, "role", role.Name)

	return &Principal{
		ID:        id,
		Kind:      KindEmployee,
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Phone:     dto.Phone,
		Active:    true,
		RoleID:    role.ID,
		RoleName:  role.Name,
	}, nil
}

// Authenticate looks up an active principal of the given kind and verifies
// the password against its stored hash.
func (s *Service) Authenticate(kind PrincipalKind, email, password string) (*Principal, error) {
	var cred *Credential
	var err error

	switch kind {
	case KindCustomer:
		cred, err = s.repo.GetCustomerCredential(email)
	case KindEmployee:
		cred, err = s.repo.GetEmployeeCredential(email)
	default:
		return nil, internal.NewValidationError("unknown principal kind", internal.ErrCodeValidationFailed)
	}

	if err != nil {
		if errors.Is(err, internal.ErrAccountNotFound) {
			s.logger.Warn("authentication lookup found no account", "kind", kind, "email", email)
			return nil, internal.ErrAccountNotFound
		}
		s.logger.Error("credential lookup failed", "kind", kind, "email", email, "error", err)
		return nil, internal.NewInternalError("failed to look up credentials", err)
	}

	if !cred.Principal.Active {
		return nil, internal.ErrAccountInactive
	}

	if cred.PasswordHash == "" {
		s.logger.Error("principal has no stored credential", "kind", kind, "email", email)
		return nil, internal.ErrCredentialMissing
	}

	if !CheckPassword(password, cred.PasswordHash) {
		return nil, internal.ErrInvalidCredentials
	}

	s.logger.Info("authentication succeeded", "kind", kind, "principal_id", cred.Principal.ID)
	p := cred.Principal
	return &p, nil
}

// IssueSession mints a session token for an authenticated principal.
func (s *Service) IssueSession(p *Principal) (string, error) {
	return s.tokens.IssueToken(p)
}

// VerifyToken delegates to the token generator.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	return s.tokens.VerifyToken(tokenString)
}

// Roles exposes the registry for wiring role gates.
func (s *Service) Roles() *RoleRegistry {
	return s.roles
}

// HashPassword creates a bcrypt hash of the password.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
// Anything bcrypt cannot parse counts as no match; there is deliberately
// no fallback acceptance for placeholder or legacy hash formats.
func CheckPassword(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}

// JWTTokenGenerator signs session claims with a server-held secret.
type JWTTokenGenerator struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &JWTTokenGenerator{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

// IssueToken signs claims for the principal with the configured expiry.
func (j *JWTTokenGenerator) IssueToken(p *Principal) (string, error) {
	now := time.Now()
	claims := &Claims{
		PrincipalID: p.ID,
		Kind:        p.Kind,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   fmt.Sprintf("%s:%d", p.Kind, p.ID),
		},
	}
	if p.Kind == KindEmployee {
		roleID := p.RoleID
		claims.RoleID = &roleID
		claims.RoleName = p.RoleName
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// VerifyToken parses and validates a session token. Expiry and signature
// failures stay distinguishable for logging even though the middleware
// collapses both into an unauthorized response.
func (j *JWTTokenGenerator) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}
	return claims, nil
}
