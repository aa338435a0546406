package rest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/HaniMe9/abe-garage-hani/internal"
	"github.com/HaniMe9/abe-garage-hani/internal/auth"
	"github.com/HaniMe9/abe-garage-hani/internal/catalog"
	"github.com/HaniMe9/abe-garage-hani/internal/customer"
	"github.com/HaniMe9/abe-garage-hani/internal/dashboard"
	"github.com/HaniMe9/abe-garage-hani/internal/employee"
	"github.com/HaniMe9/abe-garage-hani/internal/order"
	"github.com/HaniMe9/abe-garage-hani/internal/vehicle"
)

// stubAuthService only verifies tokens; the routing tests never register
// or authenticate anyone.
type stubAuthService struct {
	tokens *auth.JWTTokenGenerator
}

func (s *stubAuthService) RegisterCustomer(dto auth.RegisterCustomerDTO) (*auth.Principal, error) {
	return nil, nil
}

func (s *stubAuthService) RegisterEmployee(dto auth.RegisterEmployeeDTO) (*auth.Principal, error) {
	return nil, nil
}

func (s *stubAuthService) Authenticate(kind auth.PrincipalKind, email, password string) (*auth.Principal, error) {
	return nil, nil
}

func (s *stubAuthService) IssueSession(p *auth.Principal) (string, error) {
	return s.tokens.IssueToken(p)
}

func (s *stubAuthService) VerifyToken(tokenString string) (*auth.Claims, error) {
	return s.tokens.VerifyToken(tokenString)
}

type stubDashboardService struct{}

func (s *stubDashboardService) Overview(claims *auth.Claims) (*dashboard.Overview, error) {
	return &dashboard.Overview{}, nil
}

func (s *stubDashboardService) AdminStats() (*dashboard.Stats, error) {
	return &dashboard.Stats{}, nil
}

func (s *stubDashboardService) EmployeeStats(employeeID int64) (*dashboard.EmployeeStats, error) {
	return &dashboard.EmployeeStats{EmployeeID: employeeID}, nil
}

func (s *stubDashboardService) CustomerStats(customerID int64) (*dashboard.CustomerStats, error) {
	return &dashboard.CustomerStats{CustomerID: customerID}, nil
}

var _ = Describe("Router authorization surface", func() {
	var (
		router *chi.Mux
		tokens *auth.JWTTokenGenerator
	)

	issue := func(p *auth.Principal) string {
		token, err := tokens.IssueToken(p)
		Expect(err).NotTo(HaveOccurred())
		return token
	}

	get := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		tokens = auth.NewJWTTokenGenerator("routing-test-secret-0123456789abcdef", time.Hour)

		handlers := Handlers{
			Auth:      auth.NewHandler(&stubAuthService{tokens: tokens}),
			Customer:  customer.NewHandler(nil),
			Employee:  employee.NewHandler(nil),
			Vehicle:   vehicle.NewHandler(nil),
			Catalog:   catalog.NewHandler(nil),
			Order:     order.NewHandler(nil),
			Dashboard: dashboard.NewHandler(&stubDashboardService{}),
		}

		cfg := &internal.Config{}
		router = chi.NewRouter()
		RegisterAllRoutes(router, nil, handlers, auth.NewRoleGate(log), cfg, log)
	})

	mechanic := func() string {
		return issue(&auth.Principal{
			ID: 10, Kind: auth.KindEmployee, Email: "mech@abegarage.dev",
			RoleID: 2, RoleName: auth.RoleMechanic,
		})
	}

	admin := func() string {
		return issue(&auth.Principal{
			ID: 11, Kind: auth.KindEmployee, Email: "admin@abegarage.dev",
			RoleID: 4, RoleName: auth.RoleAdmin,
		})
	}

	customerToken := func() string {
		return issue(&auth.Principal{ID: 1, Kind: auth.KindCustomer, Email: "abel@example.com"})
	}

	It("should serve the liveness probe without a token or a database", func() {
		w := get("/api/health", "")
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("should let any employee read employee stats", func() {
		w := get("/api/employee-stats/10", mechanic())
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("should let any employee read customer stats", func() {
		w := get("/api/customer-stats/1", mechanic())
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("should keep customers out of the stats routes", func() {
		w := get("/api/employee-stats/10", customerToken())
		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	It("should serve shop-wide stats on both spellings for admin tier", func() {
		Expect(get("/api/admin/stats", admin()).Code).To(Equal(http.StatusOK))
		Expect(get("/api/admin-stats", admin()).Code).To(Equal(http.StatusOK))
	})

	It("should refuse shop-wide stats below admin tier", func() {
		Expect(get("/api/admin-stats", mechanic()).Code).To(Equal(http.StatusForbidden))
		Expect(get("/api/admin/stats", mechanic()).Code).To(Equal(http.StatusForbidden))
	})

	It("should require a token on the dashboard", func() {
		w := get("/api/dashboard", "")
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})
})
