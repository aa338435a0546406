package rest

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRest(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "REST Suite")
}

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should validate against the OpenAPI 3 spec", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("should document the routes the router mounts", func() {
		for _, path := range []string{
			"/auth/customer/register",
			"/auth/customer/login",
			"/auth/employee/login",
			"/auth/verify",
			"/customer",
			"/customer/{id}",
			"/employee/{id}",
			"/vehicle/{id}",
			"/service",
			"/order",
			"/order/{id}/complete",
			"/dashboard",
			"/admin/stats",
			"/admin-stats",
			"/employee-stats/{id}",
			"/customer-stats/{id}",
			"/health",
			"/ready",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "path %s missing from the document", path)
		}
	})

	It("should require bearer auth on the protected surface", func() {
		item := doc.Paths.Find("/order")
		Expect(item).NotTo(BeNil())
		Expect(item.Post.Security).NotTo(BeNil())
	})
})
