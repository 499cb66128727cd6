package period

import "time"

// AttendancePeriod is the date range attendance, overtime, and reimbursements
// accrue against before a single payroll run locks it.
type AttendancePeriod struct {
	ID                 string
	Name               string
	StartDate          time.Time
	EndDate            time.Time
	IsPayrollProcessed bool
	ProcessedAt        *time.Time
	ProcessedBy        *string
	CreatedBy          *string
	UpdatedBy          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
