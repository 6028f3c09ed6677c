package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kingstonbooks/payroll-backend-go/internal/config"
	appHTTP "github.com/kingstonbooks/payroll-backend-go/internal/handler/http"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/database"
	"github.com/kingstonbooks/payroll-backend-go/internal/repository/postgresql"
	payrollService "github.com/kingstonbooks/payroll-backend-go/internal/service/payroll"
	remittanceService "github.com/kingstonbooks/payroll-backend-go/internal/service/remittance"
	statutoryService "github.com/kingstonbooks/payroll-backend-go/internal/service/statutory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	ruleSetRepo := postgresql.NewRuleSetRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	runRepo := postgresql.NewRunRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	remittanceRepo := postgresql.NewRemittanceRepository(db)

	ruleSetSvc := statutoryService.NewRuleSetService(ruleSetRepo)
	payrollSvc := payrollService.NewPayrollService(db, runRepo, employeeRepo, ruleSetRepo, ledgerRepo)
	remittanceSvc := remittanceService.NewRemittanceService(db, remittanceRepo)

	statutoryHandler := appHTTP.NewStatutoryHandler(ruleSetSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	remittanceHandler := appHTTP.NewRemittanceHandler(remittanceSvc)

	router := appHTTP.NewRouter(statutoryHandler, payrollHandler, remittanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
