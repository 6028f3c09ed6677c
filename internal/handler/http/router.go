package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/kingstonbooks/payroll-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	statutoryHandler StatutoryHandler,
	payrollHandler PayrollHandler,
	remittanceHandler RemittanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-kingstonbooks"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Company-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Every route acts on behalf of one company.
		r.Use(middleware.RequireCompany)

		r.Get("/statutory-rules", statutoryHandler.ListRuleSets)

		r.Route("/payroll-runs", func(r chi.Router) {
			r.Post("/", payrollHandler.CreateRun)
			r.Get("/", payrollHandler.ListRuns)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", payrollHandler.GetRun)
				r.Post("/approve", payrollHandler.ApproveRun)
				r.Post("/pay", payrollHandler.MarkPaid)

				r.Route("/entries/{entryId}", func(r chi.Router) {
					r.Put("/", payrollHandler.UpdateEntry)
					r.Get("/payslip", payrollHandler.Payslip)
				})
			})
		})

		r.Route("/remittances", func(r chi.Router) {
			r.Post("/generate", remittanceHandler.Generate)
			r.Get("/", remittanceHandler.List)
		})
	})
	return r
}
