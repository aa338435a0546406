package postgres

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/HaniMe9/abe-garage-hani/internal/customer"
)

func TestCustomerRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CustomerRepository Suite")
}

var _ = Describe("CustomerRepository", func() {
	var (
		db   *gorm.DB
		repo customer.Repository
	)

	seed := func(email, first, last, phone string) int64 {
		var id int64
		row := db.Raw(`INSERT INTO customer_identifier (customer_email, customer_phone_number, customer_hash, customer_password_hashed)
			VALUES (?, ?, 'h', 'ph') RETURNING customer_id`, email, phone).Row()
		Expect(row.Scan(&id)).To(Succeed())
		Expect(db.Exec(`INSERT INTO customer_info (customer_id, customer_first_name, customer_last_name, active_customer_status)
			VALUES (?, ?, ?, TRUE)`, id, first, last).Error).NotTo(HaveOccurred())
		return id
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		for _, ddl := range []string{
			`CREATE TABLE customer_identifier (
				customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
				customer_email TEXT NOT NULL UNIQUE,
				customer_phone_number TEXT,
				customer_added_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				customer_hash TEXT NOT NULL,
				customer_password_hashed TEXT NOT NULL
			)`,
			`CREATE TABLE customer_info (
				customer_info_id INTEGER PRIMARY KEY AUTOINCREMENT,
				customer_id INTEGER NOT NULL UNIQUE,
				customer_first_name TEXT NOT NULL,
				customer_last_name TEXT NOT NULL,
				active_customer_status BOOLEAN NOT NULL DEFAULT TRUE
			)`,
		} {
			Expect(db.Exec(ddl).Error).NotTo(HaveOccurred())
		}

		repo = NewRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("GetByID", func() {
		It("should join identity and profile", func() {
			id := seed("abel@example.com", "Abel", "Girma", "555-0100")

			c, err := repo.GetByID(id)

			Expect(err).NotTo(HaveOccurred())
			Expect(c.Email).To(Equal("abel@example.com"))
			Expect(c.FirstName).To(Equal("Abel"))
			Expect(c.Phone).To(Equal("555-0100"))
			Expect(c.Active).To(BeTrue())
		})

		It("should error for an unknown id", func() {
			_, err := repo.GetByID(999)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Search", func() {
		BeforeEach(func() {
			seed("abel@example.com", "Abel", "Girma", "555-0100")
			seed("sara@example.com", "Sara", "Tesfaye", "555-0200")
		})

		It("should match on name fragments", func() {
			results, err := repo.Search("Tesf")

			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
			Expect(results[0].LastName).To(Equal("Tesfaye"))
		})

		It("should match on email and phone", func() {
			results, err := repo.Search("abel@")
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))

			results, err = repo.Search("0200")
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
		})

		It("should return an empty slice for no matches", func() {
			results, err := repo.Search("zzz")
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		It("should apply identifier and profile changes together", func() {
			id := seed("abel@example.com", "Abel", "Girma", "555-0100")

			phone := "555-9999"
			first := "Abelo"
			err := repo.Update(id, customer.UpdateCustomerDTO{Phone: &phone, FirstName: &first})

			Expect(err).NotTo(HaveOccurred())
			c, err := repo.GetByID(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Phone).To(Equal("555-9999"))
			Expect(c.FirstName).To(Equal("Abelo"))
			Expect(c.LastName).To(Equal("Girma"))
		})

		It("should roll back the identifier change when the profile change fails", func() {
			id := seed("abel@example.com", "Abel", "Girma", "555-0100")
			Expect(db.Exec("DROP TABLE customer_info").Error).NotTo(HaveOccurred())

			phone := "555-9999"
			first := "Abelo"
			err := repo.Update(id, customer.UpdateCustomerDTO{Phone: &phone, FirstName: &first})

			Expect(err).To(HaveOccurred())
			var storedPhone string
			Expect(db.Raw(`SELECT customer_phone_number FROM customer_identifier WHERE customer_id = ?`, id).Row().Scan(&storedPhone)).To(Succeed())
			Expect(storedPhone).To(Equal("555-0100"))
		})
	})

	Describe("Deactivate", func() {
		It("should flip the active flag without deleting the record", func() {
			id := seed("abel@example.com", "Abel", "Girma", "")

			Expect(repo.Deactivate(id)).To(Succeed())

			c, err := repo.GetByID(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Active).To(BeFalse())

			count, err := repo.Count()
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})
	})
})
