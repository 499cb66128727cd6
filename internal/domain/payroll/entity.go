package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayslipStatus enum
type PayslipStatus string

const (
	PayslipStatusDraft     PayslipStatus = "draft"
	PayslipStatusGenerated PayslipStatus = "generated"
	PayslipStatusSent      PayslipStatus = "sent"
)

// Payslip is the computed, persisted record of one employee's earnings for one
// period. At most one exists per (employee, period), enforced by a unique
// constraint and the single-run guarantee of the payroll orchestrator.
type Payslip struct {
	ID                     string
	EmployeeID             string
	AttendancePeriodID     string
	PayslipNumber          string
	BasicSalary            decimal.Decimal
	TotalWorkingDays       int
	DaysWorked             decimal.Decimal // half days count 0.5
	GrossSalary            decimal.Decimal
	Deductions             decimal.Decimal
	NetSalary              decimal.Decimal
	OvertimePay            decimal.Decimal
	TotalOvertimeHours     decimal.Decimal
	TotalReimbursements    decimal.Decimal
	TotalTakeHome          decimal.Decimal
	AttendanceBreakdown    AttendanceBreakdown
	OvertimeBreakdown      []OvertimeItem
	ReimbursementBreakdown []ReimbursementItem
	Status                 PayslipStatus
	GeneratedAt            *time.Time
	SentAt                 *time.Time
	CreatedBy              *string
	CreatedAt              time.Time
	UpdatedAt              time.Time

	// Joined fields
	EmployeeName *string
}

// AttendanceBreakdown counts the period's attendance rows by status.
type AttendanceBreakdown struct {
	TotalDays   int `json:"totalDays"`
	PresentDays int `json:"presentDays"`
	LateDays    int `json:"lateDays"`
	HalfDays    int `json:"halfDays"`
}

type OvertimeItem struct {
	Date  string          `json:"date"`
	Hours decimal.Decimal `json:"hours"`
}

type ReimbursementItem struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Payroll is the single summary row marking a period as processed. Its
// existence, backed by the unique constraint on the period reference, is the
// source of truth for "has this period been run".
type Payroll struct {
	ID                 string
	AttendancePeriodID string
	TotalEmployees     int
	TotalAmount        decimal.Decimal
	ProcessedAt        time.Time
	ProcessedBy        string
	CreatedBy          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
