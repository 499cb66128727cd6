package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/payrollhq/payslip-backend-go/internal/domain/attendance"
	"github.com/payrollhq/payslip-backend-go/internal/domain/overtime"
	"github.com/payrollhq/payslip-backend-go/internal/domain/payroll"
	"github.com/payrollhq/payslip-backend-go/internal/domain/period"
	"github.com/payrollhq/payslip-backend-go/internal/domain/reimbursement"
	"github.com/payrollhq/payslip-backend-go/internal/domain/user"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/calendar"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/database"
	"github.com/payrollhq/payslip-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db                *database.DB
	payrollRepo       payroll.PayrollRepository
	periodRepo        period.PeriodRepository
	userRepo          user.UserRepository
	attendanceRepo    attendance.AttendanceRepository
	overtimeRepo      overtime.OvertimeRepository
	reimbursementRepo reimbursement.ReimbursementRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	periodRepo period.PeriodRepository,
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	reimbursementRepo reimbursement.ReimbursementRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                db,
		payrollRepo:       payrollRepo,
		periodRepo:        periodRepo,
		userRepo:          userRepo,
		attendanceRepo:    attendanceRepo,
		overtimeRepo:      overtimeRepo,
		reimbursementRepo: reimbursementRepo,
	}
}

// RunPayroll processes an attendance period: one payslip per employee, locks
// on the overtime and reimbursement ledgers, and a single payroll summary
// row, all inside one transaction. Any failure rolls back everything.
//
// The early lookup gives concurrent callers a fast conflict error, but the
// unique constraint on payroll.attendance_period_id is what actually
// guarantees a period is never processed twice. A submission that commits
// while this transaction is in flight is not coordinated with: first
// committer wins, and the lock flag only rejects writes arriving after the
// run commits.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, periodID string, processedBy string) (payroll.RunPayrollResponse, error) {
	var result payroll.RunPayrollResponse

	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		_, err := s.payrollRepo.GetPayrollByPeriodID(ctx, periodID)
		if err == nil {
			return payroll.ErrPayrollAlreadyProcessed
		}
		if !errors.Is(err, payroll.ErrPayrollNotProcessed) {
			return err
		}

		p, err := s.periodRepo.GetByID(ctx, periodID)
		if err != nil {
			return err
		}

		totalWorkingDays := calendar.WorkingDays(p.StartDate, p.EndDate)
		if totalWorkingDays == 0 {
			return payroll.ErrNoWorkingDays
		}

		employees, err := s.userRepo.ListEmployees(ctx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}

		now := time.Now()
		totalAmount := decimal.Zero
		payslips := 0

		for _, emp := range employees {
			payslip, err := s.generateEmployeePayslip(ctx, emp, p, totalWorkingDays, processedBy, now)
			if err != nil {
				return fmt.Errorf("payslip generation failed for employee %s: %w", emp.ID, err)
			}
			totalAmount = totalAmount.Add(payslip.TotalTakeHome)
			payslips++
		}

		if err := s.overtimeRepo.LockByPeriod(ctx, periodID); err != nil {
			return err
		}
		if err := s.reimbursementRepo.LockByPeriod(ctx, periodID); err != nil {
			return err
		}

		if err := s.periodRepo.MarkProcessed(ctx, periodID, processedBy, now); err != nil {
			return err
		}

		created, err := s.payrollRepo.CreatePayroll(ctx, payroll.Payroll{
			AttendancePeriodID: periodID,
			TotalEmployees:     len(employees),
			TotalAmount:        totalAmount.Round(2),
			ProcessedAt:        now,
			ProcessedBy:        processedBy,
			CreatedBy:          &processedBy,
		})
		if err != nil {
			return err
		}

		result = payroll.RunPayrollResponse{
			PayrollID: created.ID,
			Summary: payroll.PayrollSummary{
				TotalEmployees: created.TotalEmployees,
				TotalAmount:    created.TotalAmount,
				ProcessedAt:    created.ProcessedAt.Format(time.RFC3339),
			},
			PayslipsGenerated: payslips,
		}
		return nil
	})
	if err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	return result, nil
}

// generateEmployeePayslip loads one employee's ledgers and persists the
// computed payslip. Always runs inside the caller's transaction.
func (s *PayrollServiceImpl) generateEmployeePayslip(
	ctx context.Context,
	emp user.User,
	p period.AttendancePeriod,
	totalWorkingDays int,
	processedBy string,
	now time.Time,
) (payroll.Payslip, error) {
	attendanceRecords, err := s.attendanceRepo.ListByEmployeePeriod(ctx, emp.ID, p.ID)
	if err != nil {
		return payroll.Payslip{}, err
	}
	overtimeRecords, err := s.overtimeRepo.ListByEmployeePeriod(ctx, emp.ID, p.ID)
	if err != nil {
		return payroll.Payslip{}, err
	}
	reimbursementRecords, err := s.reimbursementRepo.ListByEmployeePeriod(ctx, emp.ID, p.ID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	payslip, err := computePayslip(payslipInputs{
		Employee:         emp,
		Period:           p,
		TotalWorkingDays: totalWorkingDays,
		Attendance:       attendanceRecords,
		Overtime:         overtimeRecords,
		Reimbursements:   reimbursementRecords,
		Now:              now,
		ProcessedBy:      processedBy,
	})
	if err != nil {
		return payroll.Payslip{}, err
	}

	return s.payrollRepo.CreatePayslip(ctx, payslip)
}

// GetPayroll returns one payroll summary row by its id.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	run, err := s.payrollRepo.GetPayrollByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return toPayrollRecordResponse(run), nil
}

// GetPayrollByPeriod returns the payroll summary row for a period. A period
// that was never run reads as not-found here, unlike the precondition error
// the payslip views report.
func (s *PayrollServiceImpl) GetPayrollByPeriod(ctx context.Context, periodID string) (payroll.PayrollRecordResponse, error) {
	run, err := s.payrollRepo.GetPayrollByPeriodID(ctx, periodID)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollNotProcessed) {
			return payroll.PayrollRecordResponse{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecordResponse{}, err
	}

	return toPayrollRecordResponse(run), nil
}

func toPayrollRecordResponse(run payroll.Payroll) payroll.PayrollRecordResponse {
	return payroll.PayrollRecordResponse{
		PayrollID:          run.ID,
		AttendancePeriodID: run.AttendancePeriodID,
		TotalEmployees:     run.TotalEmployees,
		TotalAmount:        run.TotalAmount,
		ProcessedAt:        run.ProcessedAt.Format(time.RFC3339),
		ProcessedBy:        run.ProcessedBy,
	}
}

// GetEmployeePayslip returns the structured payslip view for one employee in
// a processed period.
func (s *PayrollServiceImpl) GetEmployeePayslip(ctx context.Context, employeeID string, periodID string) (payroll.EmployeePayslipResponse, error) {
	// A payroll row is the proof the period has been run.
	if _, err := s.payrollRepo.GetPayrollByPeriodID(ctx, periodID); err != nil {
		return payroll.EmployeePayslipResponse{}, err
	}

	payslip, err := s.payrollRepo.GetPayslipByEmployeePeriod(ctx, employeeID, periodID)
	if err != nil {
		return payroll.EmployeePayslipResponse{}, err
	}

	p, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.EmployeePayslipResponse{}, err
	}

	employeeName := ""
	if payslip.EmployeeName != nil {
		employeeName = *payslip.EmployeeName
	}

	var generatedAt *string
	if payslip.GeneratedAt != nil {
		str := payslip.GeneratedAt.Format(time.RFC3339)
		generatedAt = &str
	}

	totalWorkingDays := decimal.NewFromInt(int64(payslip.TotalWorkingDays))
	dailySalary := payslip.BasicSalary.Div(totalWorkingDays)
	hourlySalary := dailySalary.Div(eight)

	return payroll.EmployeePayslipResponse{
		PayslipInfo: payroll.PayslipInfo{
			PayslipNumber:   payslip.PayslipNumber,
			EmployeeName:    employeeName,
			PeriodName:      p.Name,
			PeriodStartDate: p.StartDate.Format("2006-01-02"),
			PeriodEndDate:   p.EndDate.Format("2006-01-02"),
			GeneratedAt:     generatedAt,
		},
		SalaryBreakdown: payroll.SalaryBreakdown{
			BasicSalary:      payslip.BasicSalary,
			TotalWorkingDays: payslip.TotalWorkingDays,
			DaysWorked:       payslip.DaysWorked,
			GrossSalary:      payslip.GrossSalary,
			Deductions:       payslip.Deductions,
			NetSalary:        payslip.NetSalary,
		},
		AttendanceBreakdown: payroll.AttendanceBreakdownResponse{
			Summary: payslip.AttendanceBreakdown,
			Impact: payroll.AttendanceImpact{
				DailySalary:          dailySalary.Round(2),
				EffectiveWorkingDays: payslip.DaysWorked,
				SalaryFromAttendance: payslip.GrossSalary,
			},
		},
		OvertimeBreakdown: payroll.OvertimeBreakdownResponse{
			Summary: payroll.OvertimeSummary{
				TotalHours:         payslip.TotalOvertimeHours,
				HourlySalary:       hourlySalary.Round(2),
				OvertimeMultiplier: 2,
				TotalOvertimePay:   payslip.OvertimePay,
			},
			Details: payslip.OvertimeBreakdown,
		},
		ReimbursementBreakdown: payroll.ReimbursementBreakdownResp{
			Summary: payroll.ReimbursementSummary{
				TotalAmount: payslip.TotalReimbursements,
				TotalCount:  len(payslip.ReimbursementBreakdown),
			},
			Details: payslip.ReimbursementBreakdown,
		},
		TotalTakeHome: payslip.TotalTakeHome,
		Calculation: payroll.CalculationSummary{
			GrossSalary:    payslip.GrossSalary,
			OvertimePay:    payslip.OvertimePay,
			Reimbursements: payslip.TotalReimbursements,
			Deductions:     payslip.Deductions,
			TotalTakeHome:  payslip.TotalTakeHome,
		},
	}, nil
}

// GetPayslipSummary returns the period's aggregate totals and per-employee
// list, sorted by employee name.
func (s *PayrollServiceImpl) GetPayslipSummary(ctx context.Context, periodID string) (payroll.PayslipSummaryResponse, error) {
	run, err := s.payrollRepo.GetPayrollByPeriodID(ctx, periodID)
	if err != nil {
		return payroll.PayslipSummaryResponse{}, err
	}

	p, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.PayslipSummaryResponse{}, err
	}

	payslips, err := s.payrollRepo.ListPayslipsByPeriod(ctx, periodID)
	if err != nil {
		return payroll.PayslipSummaryResponse{}, err
	}

	totalTakeHome := decimal.Zero
	totalGross := decimal.Zero
	totalOvertime := decimal.Zero
	totalReimbursements := decimal.Zero
	totalDeductions := decimal.Zero

	employees := make([]payroll.EmployeeSummary, 0, len(payslips))
	for _, ps := range payslips {
		totalTakeHome = totalTakeHome.Add(ps.TotalTakeHome)
		totalGross = totalGross.Add(ps.GrossSalary)
		totalOvertime = totalOvertime.Add(ps.OvertimePay)
		totalReimbursements = totalReimbursements.Add(ps.TotalReimbursements)
		totalDeductions = totalDeductions.Add(ps.Deductions)

		name := ""
		if ps.EmployeeName != nil {
			name = *ps.EmployeeName
		}
		employees = append(employees, payroll.EmployeeSummary{
			EmployeeID:     ps.EmployeeID,
			EmployeeName:   name,
			TakeHomePay:    ps.TotalTakeHome,
			GrossSalary:    ps.GrossSalary,
			OvertimePay:    ps.OvertimePay,
			Reimbursements: ps.TotalReimbursements,
			Deductions:     ps.Deductions,
		})
	}

	average := decimal.Zero
	if len(payslips) > 0 {
		average = totalTakeHome.Div(decimal.NewFromInt(int64(len(payslips)))).Round(2)
	}

	return payroll.PayslipSummaryResponse{
		PeriodInfo: payroll.PeriodInfo{
			PeriodID:    p.ID,
			PeriodName:  p.Name,
			StartDate:   p.StartDate.Format("2006-01-02"),
			EndDate:     p.EndDate.Format("2006-01-02"),
			ProcessedAt: run.ProcessedAt.Format(time.RFC3339),
			ProcessedBy: run.ProcessedBy,
		},
		Summary: payroll.AggregateSummary{
			TotalEmployees:      len(payslips),
			TotalTakeHomePay:    totalTakeHome,
			AverageTakeHomePay:  average,
			TotalGrossSalary:    totalGross,
			TotalOvertimePay:    totalOvertime,
			TotalReimbursements: totalReimbursements,
			TotalDeductions:     totalDeductions,
		},
		Employees: employees,
	}, nil
}
