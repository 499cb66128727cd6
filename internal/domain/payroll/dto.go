package payroll

import (
	"github.com/shopspring/decimal"
)

// ========== RUN PAYROLL ==========

type RunPayrollResponse struct {
	PayrollID         string         `json:"payroll_id"`
	Summary           PayrollSummary `json:"summary"`
	PayslipsGenerated int            `json:"payslips_generated"`
}

type PayrollSummary struct {
	TotalEmployees int             `json:"total_employees"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ProcessedAt    string          `json:"processed_at"`
}

// PayrollRecordResponse is the admin view of a single payroll summary row.
type PayrollRecordResponse struct {
	PayrollID          string          `json:"payroll_id"`
	AttendancePeriodID string          `json:"attendance_period_id"`
	TotalEmployees     int             `json:"total_employees"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	ProcessedAt        string          `json:"processed_at"`
	ProcessedBy        string          `json:"processed_by"`
}

// ========== EMPLOYEE PAYSLIP ==========

type EmployeePayslipResponse struct {
	PayslipInfo            PayslipInfo                 `json:"payslip_info"`
	SalaryBreakdown        SalaryBreakdown             `json:"salary_breakdown"`
	AttendanceBreakdown    AttendanceBreakdownResponse `json:"attendance_breakdown"`
	OvertimeBreakdown      OvertimeBreakdownResponse   `json:"overtime_breakdown"`
	ReimbursementBreakdown ReimbursementBreakdownResp  `json:"reimbursement_breakdown"`
	TotalTakeHome          decimal.Decimal             `json:"total_take_home"`
	Calculation            CalculationSummary          `json:"calculation"`
}

type PayslipInfo struct {
	PayslipNumber   string  `json:"payslip_number"`
	EmployeeName    string  `json:"employee_name"`
	PeriodName      string  `json:"period_name"`
	PeriodStartDate string  `json:"period_start_date"`
	PeriodEndDate   string  `json:"period_end_date"`
	GeneratedAt     *string `json:"generated_at,omitempty"`
}

type SalaryBreakdown struct {
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	TotalWorkingDays int             `json:"total_working_days"`
	DaysWorked       decimal.Decimal `json:"days_worked"`
	GrossSalary      decimal.Decimal `json:"gross_salary"`
	Deductions       decimal.Decimal `json:"deductions"`
	NetSalary        decimal.Decimal `json:"net_salary"`
}

type AttendanceBreakdownResponse struct {
	Summary AttendanceBreakdown `json:"summary"`
	Impact  AttendanceImpact    `json:"impact"`
}

type AttendanceImpact struct {
	DailySalary          decimal.Decimal `json:"daily_salary"`
	EffectiveWorkingDays decimal.Decimal `json:"effective_working_days"`
	SalaryFromAttendance decimal.Decimal `json:"salary_from_attendance"`
}

type OvertimeBreakdownResponse struct {
	Summary OvertimeSummary `json:"summary"`
	Details []OvertimeItem  `json:"details"`
}

type OvertimeSummary struct {
	TotalHours         decimal.Decimal `json:"total_hours"`
	HourlySalary       decimal.Decimal `json:"hourly_salary"`
	OvertimeMultiplier int             `json:"overtime_multiplier"`
	TotalOvertimePay   decimal.Decimal `json:"total_overtime_pay"`
}

type ReimbursementBreakdownResp struct {
	Summary ReimbursementSummary `json:"summary"`
	Details []ReimbursementItem  `json:"details"`
}

type ReimbursementSummary struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalCount  int             `json:"total_count"`
}

type CalculationSummary struct {
	GrossSalary    decimal.Decimal `json:"gross_salary"`
	OvertimePay    decimal.Decimal `json:"overtime_pay"`
	Reimbursements decimal.Decimal `json:"reimbursements"`
	Deductions     decimal.Decimal `json:"deductions"`
	TotalTakeHome  decimal.Decimal `json:"total_take_home"`
}

// ========== PERIOD SUMMARY ==========

type PayslipSummaryResponse struct {
	PeriodInfo PeriodInfo        `json:"period_info"`
	Summary    AggregateSummary  `json:"summary"`
	Employees  []EmployeeSummary `json:"employees"`
}

type PeriodInfo struct {
	PeriodID    string `json:"period_id"`
	PeriodName  string `json:"period_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	ProcessedAt string `json:"processed_at"`
	ProcessedBy string `json:"processed_by"`
}

type AggregateSummary struct {
	TotalEmployees      int             `json:"total_employees"`
	TotalTakeHomePay    decimal.Decimal `json:"total_take_home_pay"`
	AverageTakeHomePay  decimal.Decimal `json:"average_take_home_pay"`
	TotalGrossSalary    decimal.Decimal `json:"total_gross_salary"`
	TotalOvertimePay    decimal.Decimal `json:"total_overtime_pay"`
	TotalReimbursements decimal.Decimal `json:"total_reimbursements"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
}

type EmployeeSummary struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	TakeHomePay    decimal.Decimal `json:"take_home_pay"`
	GrossSalary    decimal.Decimal `json:"gross_salary"`
	OvertimePay    decimal.Decimal `json:"overtime_pay"`
	Reimbursements decimal.Decimal `json:"reimbursements"`
	Deductions     decimal.Decimal `json:"deductions"`
}
