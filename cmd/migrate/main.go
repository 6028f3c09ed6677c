// migrate applies the schema migrations and seeds the statutory rule-set
// versions a fresh database needs before the API can compute payroll.
// Setting SEED_DEMO=true also loads a demo company with a small staff
// roster for local development.
//
// Usage: go run ./cmd/migrate
package main

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/kingstonbooks/payroll-backend-go/internal/config"
	"github.com/kingstonbooks/payroll-backend-go/internal/fixtures"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/database"
	"github.com/kingstonbooks/payroll-backend-go/internal/repository/postgresql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer db.Close()

	log.Println("Applying migrations...")
	if err := database.Migrate(ctx, db, "migrations"); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	if err := seedRuleSets(ctx, db); err != nil {
		log.Fatalf("Failed to seed statutory rule sets: %v", err)
	}

	if os.Getenv("SEED_DEMO") == "true" {
		if err := seedDemoCompany(ctx, db); err != nil {
			log.Fatalf("Failed to seed demo company: %v", err)
		}
	}

	log.Println("Done")
}

// seedRuleSets loads the default statutory versions into an empty table.
// A non-empty table is left alone: published versions are immutable and
// new ones arrive as their own migration or admin action.
func seedRuleSets(ctx context.Context, db *database.DB) error {
	repo := postgresql.NewRuleSetRepository(db)

	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Statutory rule sets already present (%d), skipping seed", len(existing))
		return nil
	}

	for _, ruleSet := range fixtures.GetDefaultRuleSets() {
		created, err := repo.Create(ctx, ruleSet)
		if err != nil {
			return err
		}
		log.Printf("Seeded rule set %s (effective %s)", created.Name, created.EffectiveFrom.Format("2006-01-02"))
	}
	return nil
}

func seedDemoCompany(ctx context.Context, db *database.DB) error {
	demo := fixtures.GetDemoCompany()

	var companyID string
	err := db.QueryRow(ctx, "SELECT id FROM companies WHERE name = $1", demo.Name).Scan(&companyID)
	if err == pgx.ErrNoRows {
		err = db.QueryRow(ctx, "INSERT INTO companies (name) VALUES ($1) RETURNING id", demo.Name).Scan(&companyID)
	}
	if err != nil {
		return err
	}

	for _, emp := range fixtures.GetDemoEmployees(companyID) {
		_, err := db.Exec(ctx, `
			INSERT INTO employees (company_id, employee_code, full_name, email, base_salary, pay_frequency, employment_status, hire_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT ON CONSTRAINT uk_employee_company_code DO NOTHING
		`, emp.CompanyID, emp.EmployeeCode, emp.FullName, emp.Email, emp.BaseSalary, emp.PayFrequency, emp.EmploymentStatus, emp.HireDate)
		if err != nil {
			return err
		}
	}

	log.Printf("Demo company ready: %s (X-Company-ID: %s)", demo.Name, companyID)
	return nil
}
