package payroll

import "context"

type PayrollRepository interface {
	// CreatePayroll inserts the one summary row per period. The unique
	// constraint on attendance_period_id is the idempotency backstop; a
	// violation surfaces as ErrPayrollAlreadyProcessed.
	CreatePayroll(ctx context.Context, p Payroll) (Payroll, error)
	GetPayrollByID(ctx context.Context, id string) (Payroll, error)
	GetPayrollByPeriodID(ctx context.Context, periodID string) (Payroll, error)

	CreatePayslip(ctx context.Context, p Payslip) (Payslip, error)
	GetPayslipByEmployeePeriod(ctx context.Context, employeeID, periodID string) (Payslip, error)

	// ListPayslipsByPeriod returns the period's payslips with employee names
	// joined, sorted by employee name ascending.
	ListPayslipsByPeriod(ctx context.Context, periodID string) ([]Payslip, error)
}

type PayrollService interface {
	RunPayroll(ctx context.Context, periodID string, processedBy string) (RunPayrollResponse, error)
	GetPayroll(ctx context.Context, id string) (PayrollRecordResponse, error)
	GetPayrollByPeriod(ctx context.Context, periodID string) (PayrollRecordResponse, error)
	GetEmployeePayslip(ctx context.Context, employeeID string, periodID string) (EmployeePayslipResponse, error)
	GetPayslipSummary(ctx context.Context, periodID string) (PayslipSummaryResponse, error)
}
