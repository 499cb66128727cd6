package payroll

import (
	"fmt"
	"time"

	"github.com/payrollhq/payslip-backend-go/internal/domain/attendance"
	"github.com/payrollhq/payslip-backend-go/internal/domain/overtime"
	"github.com/payrollhq/payslip-backend-go/internal/domain/payroll"
	"github.com/payrollhq/payslip-backend-go/internal/domain/period"
	"github.com/payrollhq/payslip-backend-go/internal/domain/reimbursement"
	"github.com/payrollhq/payslip-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

var (
	two   = decimal.NewFromInt(2)
	eight = decimal.NewFromInt(8)
)

// payslipInputs is everything the payslip calculation needs, loaded up front
// so the calculation itself is pure.
type payslipInputs struct {
	Employee         user.User
	Period           period.AttendancePeriod
	TotalWorkingDays int
	Attendance       []attendance.Attendance
	Overtime         []overtime.Overtime
	Reimbursements   []reimbursement.Reimbursement
	Now              time.Time
	ProcessedBy      string
}

// computePayslip derives one employee's payslip from the period's ledgers.
// All arithmetic stays in full decimal precision; two-decimal rounding is
// applied once, on the values that get persisted.
func computePayslip(in payslipInputs) (payroll.Payslip, error) {
	if in.TotalWorkingDays == 0 {
		return payroll.Payslip{}, payroll.ErrNoWorkingDays
	}

	breakdown := payroll.AttendanceBreakdown{TotalDays: len(in.Attendance)}
	daysWorked := decimal.Zero
	for _, a := range in.Attendance {
		switch a.Status {
		case attendance.StatusPresent:
			breakdown.PresentDays++
		case attendance.StatusLate:
			breakdown.LateDays++
		case attendance.StatusHalfDay:
			breakdown.HalfDays++
		}
		daysWorked = daysWorked.Add(decimal.NewFromFloat(a.WorkedDayValue()))
	}

	totalWorkingDays := decimal.NewFromInt(int64(in.TotalWorkingDays))
	dailySalary := in.Employee.MonthlySalary.Div(totalWorkingDays)
	grossSalary := dailySalary.Mul(daysWorked)

	totalOvertimeHours := decimal.Zero
	overtimeItems := make([]payroll.OvertimeItem, 0, len(in.Overtime))
	for _, o := range in.Overtime {
		totalOvertimeHours = totalOvertimeHours.Add(o.Hours)
		overtimeItems = append(overtimeItems, payroll.OvertimeItem{
			Date:  o.OvertimeDate.Format("2006-01-02"),
			Hours: o.Hours,
		})
	}
	hourlySalary := dailySalary.Div(eight)
	overtimePay := totalOvertimeHours.Mul(hourlySalary).Mul(two)

	totalReimbursements := decimal.Zero
	reimbursementItems := make([]payroll.ReimbursementItem, 0, len(in.Reimbursements))
	for _, rec := range in.Reimbursements {
		totalReimbursements = totalReimbursements.Add(rec.Amount)
		reimbursementItems = append(reimbursementItems, payroll.ReimbursementItem{
			Amount:      rec.Amount,
			Description: rec.Description,
		})
	}

	deductions := decimal.Zero // reserved for future policy
	netSalary := grossSalary.Sub(deductions)
	totalTakeHome := grossSalary.Add(overtimePay).Add(totalReimbursements).Sub(deductions)

	generatedAt := in.Now
	processedBy := in.ProcessedBy

	return payroll.Payslip{
		EmployeeID:             in.Employee.ID,
		AttendancePeriodID:     in.Period.ID,
		PayslipNumber:          generatePayslipNumber(in.Employee.ID, in.Period.ID, in.Now),
		BasicSalary:            in.Employee.MonthlySalary.Round(2),
		TotalWorkingDays:       in.TotalWorkingDays,
		DaysWorked:             daysWorked,
		GrossSalary:            grossSalary.Round(2),
		Deductions:             deductions.Round(2),
		NetSalary:              netSalary.Round(2),
		OvertimePay:            overtimePay.Round(2),
		TotalOvertimeHours:     totalOvertimeHours.Round(2),
		TotalReimbursements:    totalReimbursements.Round(2),
		TotalTakeHome:          totalTakeHome.Round(2),
		AttendanceBreakdown:    breakdown,
		OvertimeBreakdown:      overtimeItems,
		ReimbursementBreakdown: reimbursementItems,
		Status:                 payroll.PayslipStatusGenerated,
		GeneratedAt:            &generatedAt,
		CreatedBy:              &processedBy,
	}, nil
}

// generatePayslipNumber composes a system-unique number from fragments of the
// employee id, the period id, and the generation time. The unique index on
// payslip_number is the backstop for the astronomically unlikely collision.
func generatePayslipNumber(employeeID, periodID string, now time.Time) string {
	ts := fmt.Sprintf("%d", now.UnixMilli())
	return fmt.Sprintf("PAY-%s-%s-%s", lastN(employeeID, 4), lastN(periodID, 4), lastN(ts, 6))
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
