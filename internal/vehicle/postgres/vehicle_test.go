package postgres

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/HaniMe9/abe-garage-hani/internal/vehicle"
)

func TestVehicleRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "VehicleRepository Suite")
}

var _ = Describe("VehicleRepository", func() {
	var (
		db   *gorm.DB
		repo vehicle.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&vehicle.Vehicle{})).To(Succeed())

		repo = NewRepository(db)
	})

	It("should round-trip a vehicle", func() {
		v := &vehicle.Vehicle{
			CustomerID: 7,
			Year:       2018,
			Make:       "Toyota",
			Model:      "Corolla",
			Mileage:    42000,
			Color:      "Silver",
		}
		Expect(repo.Create(v)).To(Succeed())
		Expect(v.VehicleID).NotTo(BeZero())

		got, err := repo.GetByID(v.VehicleID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Make).To(Equal("Toyota"))
		Expect(got.CustomerID).To(Equal(int64(7)))
	})

	It("should return gorm's not-found error for an unknown id", func() {
		_, err := repo.GetByID(999)
		Expect(err).To(MatchError(gorm.ErrRecordNotFound))
	})

	It("should scope the list and count to one customer", func() {
		for _, v := range []*vehicle.Vehicle{
			{CustomerID: 7, Year: 2018, Make: "Toyota", Model: "Corolla"},
			{CustomerID: 7, Year: 2006, Make: "Honda", Model: "Civic"},
			{CustomerID: 8, Year: 2021, Make: "Ford", Model: "Ranger"},
		} {
			Expect(repo.Create(v)).To(Succeed())
		}

		vehicles, err := repo.ListByCustomer(7)
		Expect(err).NotTo(HaveOccurred())
		Expect(vehicles).To(HaveLen(2))
		Expect(vehicles[0].VehicleID).To(BeNumerically("<", vehicles[1].VehicleID))

		count, err := repo.CountByCustomer(7)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(int64(2)))

		count, err = repo.CountByCustomer(99)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeZero())
	})

	It("should persist field updates", func() {
		v := &vehicle.Vehicle{CustomerID: 7, Year: 2018, Make: "Toyota", Model: "Corolla", Mileage: 42000}
		Expect(repo.Create(v)).To(Succeed())

		v.Mileage = 48500
		Expect(repo.Update(v)).To(Succeed())

		got, err := repo.GetByID(v.VehicleID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Mileage).To(Equal(48500))
	})
})
