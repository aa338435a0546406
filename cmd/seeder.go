package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with company roles, the service catalog and an admin account for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			tables := []string{
				"order_services", "order_status", "order_info", "orders",
				"customer_vehicle_info",
				"employee_role", "employee_pass", "employee_info", "employee",
				"customer_info", "customer_identifier",
			}
			for _, table := range tables {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		roles := []struct {
			ID   int64
			Name string
			Desc string
		}{
			{1, "Receptionist", "Front desk, customer intake"},
			{2, "Mechanic", "Works service orders"},
			{3, "Manager", "Shop management and reporting"},
			{4, "Admin", "Full administrator"},
		}
		for _, r := range roles {
			var exists int
			row := db.Raw("SELECT 1 FROM company_roles WHERE company_role_id = ?", r.ID).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO company_roles (company_role_id, company_role_name, company_role_description) VALUES (?, ?, ?)",
				r.ID, r.Name, r.Desc).Error; err != nil {
				log.Fatalf("failed to insert role %s: %v", r.Name, err)
			}
			fmt.Println("Seeded role:", r.Name)
		}

		services := []struct {
			Name string
			Desc string
		}{
			{"Oil change", "Every 5,000 kilometers or so, you need to get your oil changed to keep your vehicle running as smoothly as possible."},
			{"Spark plug replacement", "Spark plugs are a small part that can cause big problems. Replacing them requires knowledge and precision."},
			{"Fuel cap tightening", "A loose fuel cap can trigger the check engine light and waste fuel."},
			{"Timing belt replacement", "The timing belt keeps the engine camshaft and crankshaft in sync; a worn belt can ruin the engine."},
			{"Cylinder repair", "Cylinders fire in a precise order; a misfiring cylinder saps power and economy."},
			{"Engine light diagnostics", "Full diagnostic scan to pinpoint what turned the warning light on."},
		}
		for _, s := range services {
			var exists int
			row := db.Raw("SELECT 1 FROM common_services WHERE service_name = ?", s.Name).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO common_services (service_name, service_description) VALUES (?, ?)",
				s.Name, s.Desc).Error; err != nil {
				log.Fatalf("failed to insert service %s: %v", s.Name, err)
			}
			fmt.Println("Seeded service:", s.Name)
		}

		adminEmail := "admin@abegarage.dev"
		var exists int
		if err := db.Raw("SELECT 1 FROM employee WHERE employee_email = ?", adminEmail).Row().Scan(&exists); err == nil {
			fmt.Println("admin employee already exists:", adminEmail)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("change-me-on-first-login"), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var employeeID int64
			row := tx.Raw(
				"INSERT INTO employee (employee_email, active_employee, employee_added_date) VALUES (?, TRUE, now()) RETURNING employee_id",
				adminEmail).Row()
			if err := row.Scan(&employeeID); err != nil {
				return fmt.Errorf("insert employee: %w", err)
			}
			if err := tx.Exec(
				"INSERT INTO employee_info (employee_id, employee_first_name, employee_last_name, employee_phone) VALUES (?, ?, ?, ?)",
				employeeID, "Shop", "Admin", "").Error; err != nil {
				return fmt.Errorf("insert employee info: %w", err)
			}
			if err := tx.Exec(
				"INSERT INTO employee_pass (employee_id, employee_password_hashed) VALUES (?, ?)",
				employeeID, string(hash)).Error; err != nil {
				return fmt.Errorf("insert employee credential: %w", err)
			}
			if err := tx.Exec(
				"INSERT INTO employee_role (employee_id, company_role_id) VALUES (?, 4)",
				employeeID).Error; err != nil {
				return fmt.Errorf("insert employee role: %w", err)
			}
			return nil
		})
		if err != nil {
			log.Fatalf("failed to seed admin employee: %v", err)
		}

		fmt.Println("Seeded admin employee:", adminEmail)
	},
}
