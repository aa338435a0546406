package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/HaniMe9/abe-garage-hani/internal/catalog"
	catalogPostgres "github.com/HaniMe9/abe-garage-hani/internal/catalog/postgres"
	"github.com/HaniMe9/abe-garage-hani/pkg/logger"
)

func TestCatalog(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Catalog Suite")
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

var _ = Describe("Catalog Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    catalog.Repository
		service *catalog.Service
		handler *catalog.Handler
		router  *chi.Mux
	)

	BeforeEach(func() {
		logger.Init("test", "error")

		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&catalog.GarageService{})
		Expect(err).NotTo(HaveOccurred())

		repo = catalogPostgres.NewRepository(db)
		service = catalog.NewService(repo, logger.LoggerWrapper())
		handler = catalog.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/service", handler.List)
		router.Get("/service/{id}", handler.Get)
		router.Post("/service", handler.Create)
		router.Put("/service/{id}", handler.Update)

		seeded := []*catalog.GarageService{
			{Name: "Oil change", Description: "Every 5,000 kilometers"},
			{Name: "Timing belt replacement", Description: "Replace the timing belt"},
		}
		for _, gs := range seeded {
			Expect(repo.Create(gs)).To(Succeed())
		}
	})

	It("should list the catalog inside the response envelope", func() {
		req := httptest.NewRequest(http.MethodGet, "/service", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var resp envelope
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Success).To(BeTrue())

		var services []*catalog.GarageService
		Expect(json.Unmarshal(resp.Data, &services)).To(Succeed())
		Expect(services).To(HaveLen(2))

		names := make([]string, len(services))
		for i, gs := range services {
			names[i] = gs.Name
		}
		Expect(names).To(ConsistOf("Oil change", "Timing belt replacement"))
	})

	It("should fetch one service by id", func() {
		req := httptest.NewRequest(http.MethodGet, "/service/1", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var resp envelope
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		var gs catalog.GarageService
		Expect(json.Unmarshal(resp.Data, &gs)).To(Succeed())
		Expect(gs.ServiceID).To(Equal(int64(1)))
		Expect(gs.Name).To(Equal("Oil change"))
	})

	It("should return 404 with a failure envelope for an unknown id", func() {
		req := httptest.NewRequest(http.MethodGet, "/service/999", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))

		var resp envelope
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Success).To(BeFalse())
	})

	It("should create a service and persist it", func() {
		body := strings.NewReader(`{"service_name":"Brake inspection","service_description":"Pads and rotors"}`)
		req := httptest.NewRequest(http.MethodPost, "/service", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		services, err := repo.List()
		Expect(err).NotTo(HaveOccurred())
		Expect(services).To(HaveLen(3))
	})

	It("should reject a service without a name", func() {
		body := strings.NewReader(`{"service_description":"no name"}`)
		req := httptest.NewRequest(http.MethodPost, "/service", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should update only the provided fields", func() {
		body := strings.NewReader(`{"service_description":"Every 8,000 kilometers"}`)
		req := httptest.NewRequest(http.MethodPut, "/service/1", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		gs, err := repo.GetByID(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(gs.Name).To(Equal("Oil change"))
		Expect(gs.Description).To(Equal("Every 8,000 kilometers"))
	})
})
