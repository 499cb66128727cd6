package main

import (
	"fmt"
	"net/http"

	"github.com/payrollhq/payslip-backend-go/internal/config"
	appHTTP "github.com/payrollhq/payslip-backend-go/internal/handler/http"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/database"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/jwt"
	"github.com/payrollhq/payslip-backend-go/internal/repository/postgresql"
	attendanceService "github.com/payrollhq/payslip-backend-go/internal/service/attendance"
	authService "github.com/payrollhq/payslip-backend-go/internal/service/auth"
	overtimeService "github.com/payrollhq/payslip-backend-go/internal/service/overtime"
	payrollService "github.com/payrollhq/payslip-backend-go/internal/service/payroll"
	periodService "github.com/payrollhq/payslip-backend-go/internal/service/period"
	reimbursementService "github.com/payrollhq/payslip-backend-go/internal/service/reimbursement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	reimbursementRepo := postgresql.NewReimbursementRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	periodSvc := periodService.NewPeriodService(periodRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, periodRepo)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, attendanceRepo, periodRepo)
	reimbursementSvc := reimbursementService.NewReimbursementService(reimbursementRepo, periodRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, periodRepo, userRepo, attendanceRepo, overtimeRepo, reimbursementRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	periodHandler := appHTTP.NewPeriodHandler(periodSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	reimbursementHandler := appHTTP.NewReimbursementHandler(reimbursementSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		periodHandler,
		attendanceHandler,
		overtimeHandler,
		reimbursementHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
