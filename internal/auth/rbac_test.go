package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func employeeClaims(role RoleName) *Claims {
	roleID := int64(1)
	return &Claims{
		PrincipalID: 42,
		Kind:        KindEmployee,
		Email:       "worker@example.com",
		RoleID:      &roleID,
		RoleName:    role,
	}
}

func customerClaims() *Claims {
	return &Claims{
		PrincipalID: 7,
		Kind:        KindCustomer,
		Email:       "customer@example.com",
	}
}

var _ = ginkgo.Describe("RoleGate", func() {
	var (
		gate    *RoleGate
		reached bool
		next    http.Handler
	)

	ginkgo.BeforeEach(func() {
		gate = NewRoleGate(testLogger())
		reached = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			w.WriteHeader(http.StatusOK)
		})
	})

	serve := func(mw func(http.Handler) http.Handler, claims *Claims) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if claims != nil {
			req = req.WithContext(ContextWithClaims(req.Context(), claims))
		}
		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, req)
		return rec
	}

	ginkgo.Describe("RequireAdminTier", func() {
		ginkgo.It("should admit an Admin employee", func() {
			rec := serve(gate.RequireAdminTier(), employeeClaims(RoleAdmin))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(reached).To(gomega.BeTrue())
		})

		ginkgo.It("should admit a Manager employee", func() {
			rec := serve(gate.RequireAdminTier(), employeeClaims(RoleManager))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(reached).To(gomega.BeTrue())
		})

		ginkgo.It("should reject a Mechanic with 403", func() {
			rec := serve(gate.RequireAdminTier(), employeeClaims(RoleMechanic))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
			gomega.Expect(reached).To(gomega.BeFalse())
		})

		ginkgo.It("should reject a customer principal with 403", func() {
			rec := serve(gate.RequireAdminTier(), customerClaims())

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
			gomega.Expect(reached).To(gomega.BeFalse())
		})

		ginkgo.It("should reject a request with no claims with 401", func() {
			rec := serve(gate.RequireAdminTier(), nil)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(reached).To(gomega.BeFalse())
		})

		ginkgo.It("should write the response envelope on rejection", func() {
			rec := serve(gate.RequireAdminTier(), employeeClaims(RoleReceptionist))

			var body map[string]interface{}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body["success"]).To(gomega.Equal(false))
		})
	})

	ginkgo.Describe("RequireEmployee", func() {
		ginkgo.It("should admit any employee role", func() {
			for _, role := range []RoleName{RoleReceptionist, RoleMechanic, RoleManager, RoleAdmin} {
				reached = false
				rec := serve(gate.RequireEmployee(), employeeClaims(role))
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK), "role %s", role)
				gomega.Expect(reached).To(gomega.BeTrue())
			}
		})

		ginkgo.It("should reject a customer principal", func() {
			rec := serve(gate.RequireEmployee(), customerClaims())

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
		})
	})

	ginkgo.Describe("RequireRoles", func() {
		ginkgo.It("should only admit the listed roles", func() {
			mw := gate.RequireRoles(RoleMechanic)

			rec := serve(mw, employeeClaims(RoleMechanic))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			rec = serve(mw, employeeClaims(RoleAdmin))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
		})
	})
})

var _ = ginkgo.Describe("AuthMiddleware", func() {
	var (
		handler *Handler
		repo    *mockAuthRepository
		tokens  *JWTTokenGenerator
		next    http.Handler
		reached bool
	)

	ginkgo.BeforeEach(func() {
		repo = newMockAuthRepository()
		tokens = NewJWTTokenGenerator("middleware-test-secret-0123456789", time.Hour)
		svc := NewService(repo, tokens, NewRoleRegistry(testRoles()), 0, testLogger())
		handler = NewHandler(svc)
		reached = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(claims.PrincipalID).ToNot(gomega.BeZero())
			reached = true
			w.WriteHeader(http.StatusOK)
		})
	})

	ginkgo.It("should pass a valid bearer token through with claims attached", func() {
		token, err := tokens.IssueToken(&Principal{ID: 11, Kind: KindEmployee, RoleID: 4, RoleName: RoleAdmin})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		req := httptest.NewRequest(http.MethodGet, "/verify", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.AuthMiddleware(next).ServeHTTP(rec, req)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		gomega.Expect(reached).To(gomega.BeTrue())
	})

	ginkgo.It("should reject a missing Authorization header with 401", func() {
		req := httptest.NewRequest(http.MethodGet, "/verify", nil)
		rec := httptest.NewRecorder()
		handler.AuthMiddleware(next).ServeHTTP(rec, req)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(reached).To(gomega.BeFalse())
	})

	ginkgo.It("should reject a malformed token with 401", func() {
		req := httptest.NewRequest(http.MethodGet, "/verify", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.AuthMiddleware(next).ServeHTTP(rec, req)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(reached).To(gomega.BeFalse())
	})

	ginkgo.It("should reject an expired token with 401", func() {
		expired := NewJWTTokenGenerator("middleware-test-secret-0123456789", -time.Minute)
		token, err := expired.IssueToken(&Principal{ID: 11, Kind: KindEmployee})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		req := httptest.NewRequest(http.MethodGet, "/verify", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.AuthMiddleware(next).ServeHTTP(rec, req)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(reached).To(gomega.BeFalse())
	})
})
