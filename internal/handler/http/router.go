package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/payrollhq/payslip-backend-go/internal/handler/http/middleware"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	periodHandler PeriodHandler,
	attendanceHandler AttendanceHandler,
	overtimeHandler OvertimeHandler,
	reimbursementHandler ReimbursementHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payslip-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance-periods", func(r chi.Router) {
				r.Get("/", periodHandler.List)
				r.Get("/{periodId}", periodHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", periodHandler.Create)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/", attendanceHandler.Submit)
				r.Get("/period/{periodId}", attendanceHandler.ListMine)
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", overtimeHandler.Submit)
				r.Get("/period/{periodId}", overtimeHandler.ListMine)
				r.Put("/{overtimeId}", overtimeHandler.Update)
				r.Delete("/{overtimeId}", overtimeHandler.Delete)
			})

			r.Route("/reimbursements", func(r chi.Router) {
				r.Post("/", reimbursementHandler.Submit)
				r.Get("/period/{periodId}", reimbursementHandler.ListMine)
				r.Put("/{reimbursementId}", reimbursementHandler.Update)
				r.Delete("/{reimbursementId}", reimbursementHandler.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{periodId}/run", payrollHandler.RunPayroll)
					r.Get("/{payrollId}", payrollHandler.GetPayroll)
					r.Get("/period/{periodId}", payrollHandler.GetPayrollByPeriod)
				})
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/{periodId}", payrollHandler.GetMyPayslip)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/{periodId}/summary", payrollHandler.GetPayslipSummary)
				})
			})
		})
	})

	return r
}
