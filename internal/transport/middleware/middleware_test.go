package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/HaniMe9/abe-garage-hani/pkg/logger"
)

func TestMiddleware(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Middleware Suite")
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

var _ = ginkgo.Describe("CORS", func() {
	const frontend = "http://localhost:5173"

	ginkgo.It("should allow the configured frontend origin", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", frontend)
		rec := httptest.NewRecorder()

		CORS(frontend)(okHandler).ServeHTTP(rec, req)

		gomega.Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(gomega.Equal(frontend))
	})

	ginkgo.It("should not reflect an unknown origin", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		rec := httptest.NewRecorder()

		CORS(frontend)(okHandler).ServeHTTP(rec, req)

		gomega.Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(gomega.BeEmpty())
	})

	ginkgo.It("should short-circuit preflight requests", func() {
		req := httptest.NewRequest(http.MethodOptions, "/api/order", nil)
		req.Header.Set("Origin", frontend)
		rec := httptest.NewRecorder()

		called := false
		CORS(frontend)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})).ServeHTTP(rec, req)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNoContent))
		gomega.Expect(called).To(gomega.BeFalse())
	})
})

var _ = ginkgo.Describe("Recovery", func() {
	ginkgo.It("should convert a handler panic into a 500 envelope", func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
		rec := httptest.NewRecorder()
		Recovery(logger)(panicky).ServeHTTP(rec, req)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusInternalServerError))
		gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(`"success":false`))
	})
})

var _ = ginkgo.Describe("RequestID", func() {
	ginkgo.It("should honor a caller-supplied trace id", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
		req.Header.Set("X-Trace-ID", "trace-abc-123")
		rec := httptest.NewRecorder()

		RequestID(okHandler).ServeHTTP(rec, req)

		gomega.Expect(rec.Header().Get("X-Trace-ID")).To(gomega.Equal("trace-abc-123"))
	})

	ginkgo.It("should mint a trace id when the caller sends none", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
		rec := httptest.NewRecorder()

		RequestID(okHandler).ServeHTTP(rec, req)

		gomega.Expect(rec.Header().Get("X-Trace-ID")).ToNot(gomega.BeEmpty())
	})

	ginkgo.It("should thread a context logger through to the handler", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
		rec := httptest.NewRecorder()

		var got *slog.Logger
		RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = logger.From(r.Context())
		})).ServeHTTP(rec, req)

		gomega.Expect(got).ToNot(gomega.BeNil())
		gomega.Expect(got).ToNot(gomega.BeIdenticalTo(logger.LoggerWrapper()))
	})
})

var _ = ginkgo.Describe("request body redaction", func() {
	ginkgo.It("should mask credential fields in JSON bodies", func() {
		body := `{"employee_email":"a@b.com","employee_password":"hunter2"}`

		redacted := redactBody([]byte(body))

		gomega.Expect(redacted).To(gomega.ContainSubstring("a@b.com"))
		gomega.Expect(redacted).ToNot(gomega.ContainSubstring("hunter2"))
		gomega.Expect(redacted).To(gomega.ContainSubstring("[REDACTED]"))
	})

	ginkgo.It("should mask nested credential fields", func() {
		body := `{"payload":{"token":"abc.def.ghi"},"items":[{"password":"x"}]}`

		redacted := redactBody([]byte(body))

		gomega.Expect(redacted).ToNot(gomega.ContainSubstring("abc.def.ghi"))
		gomega.Expect(strings.Count(redacted, "[REDACTED]")).To(gomega.Equal(2))
	})

	ginkgo.It("should drop non-JSON bodies that mention credentials", func() {
		redacted := redactBody([]byte("password=hunter2"))

		gomega.Expect(redacted).To(gomega.Equal("[REDACTED]"))
	})

	ginkgo.It("should pass harmless bodies through", func() {
		gomega.Expect(redactBody([]byte(`{"vehicle_make":"Toyota"}`))).To(gomega.ContainSubstring("Toyota"))
		gomega.Expect(redactBody(nil)).To(gomega.BeEmpty())
	})
})
