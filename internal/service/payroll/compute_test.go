package payroll

import (
	"testing"
	"time"

	"github.com/payrollhq/payslip-backend-go/internal/domain/attendance"
	"github.com/payrollhq/payslip-backend-go/internal/domain/overtime"
	"github.com/payrollhq/payslip-backend-go/internal/domain/payroll"
	"github.com/payrollhq/payslip-backend-go/internal/domain/period"
	"github.com/payrollhq/payslip-backend-go/internal/domain/reimbursement"
	"github.com/payrollhq/payslip-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee(monthlySalary int64) user.User {
	return user.User{
		ID:            "3f1c9a6e-0000-0000-0000-0000aaaa1111",
		Name:          "Test Employee",
		Role:          user.RoleEmployee,
		MonthlySalary: decimal.NewFromInt(monthlySalary),
	}
}

func testPeriod() period.AttendancePeriod {
	return period.AttendancePeriod{
		ID:        "7b2d8c4f-0000-0000-0000-0000bbbb2222",
		Name:      "June 2025",
		StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
}

func attendanceRecords(present, late, halfDay int) []attendance.Attendance {
	var records []attendance.Attendance
	for i := 0; i < present; i++ {
		records = append(records, attendance.Attendance{Status: attendance.StatusPresent})
	}
	for i := 0; i < late; i++ {
		records = append(records, attendance.Attendance{Status: attendance.StatusLate})
	}
	for i := 0; i < halfDay; i++ {
		records = append(records, attendance.Attendance{Status: attendance.StatusHalfDay})
	}
	return records
}

func TestComputePayslip_DaysWorked(t *testing.T) {
	t.Parallel()

	payslip, err := computePayslip(payslipInputs{
		Employee:         testEmployee(5_000_000),
		Period:           testPeriod(),
		TotalWorkingDays: 22,
		Attendance:       attendanceRecords(20, 0, 2),
		Now:              time.Now(),
		ProcessedBy:      "admin-id",
	})
	require.NoError(t, err)

	assert.True(t, payslip.DaysWorked.Equal(decimal.NewFromFloat(21.0)), "daysWorked = %s", payslip.DaysWorked)
	assert.Equal(t, 20, payslip.AttendanceBreakdown.PresentDays)
	assert.Equal(t, 2, payslip.AttendanceBreakdown.HalfDays)
	assert.Equal(t, 22, payslip.AttendanceBreakdown.TotalDays)
}

func TestComputePayslip_LateDaysCountFull(t *testing.T) {
	t.Parallel()

	payslip, err := computePayslip(payslipInputs{
		Employee:         testEmployee(5_000_000),
		Period:           testPeriod(),
		TotalWorkingDays: 22,
		Attendance:       attendanceRecords(18, 3, 0),
		Now:              time.Now(),
		ProcessedBy:      "admin-id",
	})
	require.NoError(t, err)

	assert.True(t, payslip.DaysWorked.Equal(decimal.NewFromInt(21)))
	assert.Equal(t, 3, payslip.AttendanceBreakdown.LateDays)
}

func TestComputePayslip_OvertimePayFormula(t *testing.T) {
	t.Parallel()

	// monthlySalary 5,000,000 over 22 working days, 2.5 overtime hours:
	// dailySalary 227,272.73, hourlySalary 28,409.09, pay at 2x = 142,045.45
	payslip, err := computePayslip(payslipInputs{
		Employee:         testEmployee(5_000_000),
		Period:           testPeriod(),
		TotalWorkingDays: 22,
		Attendance:       attendanceRecords(22, 0, 0),
		Overtime: []overtime.Overtime{
			{OvertimeDate: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), Hours: decimal.NewFromFloat(1.5)},
			{OvertimeDate: time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC), Hours: decimal.NewFromFloat(1.0)},
		},
		Now:         time.Now(),
		ProcessedBy: "admin-id",
	})
	require.NoError(t, err)

	assert.Equal(t, "2.5", payslip.TotalOvertimeHours.String())
	assert.Equal(t, "142045.45", payslip.OvertimePay.String())
}

func TestComputePayslip_RoundingOnlyAtPersistence(t *testing.T) {
	t.Parallel()

	// A full month at 5,000,000/22: gross must come back to 5,000,000.00, not
	// drift through a rounded daily rate (227,272.73 * 22 = 5,000,000.06).
	payslip, err := computePayslip(payslipInputs{
		Employee:         testEmployee(5_000_000),
		Period:           testPeriod(),
		TotalWorkingDays: 22,
		Attendance:       attendanceRecords(22, 0, 0),
		Now:              time.Now(),
		ProcessedBy:      "admin-id",
	})
	require.NoError(t, err)

	assert.Equal(t, "5000000", payslip.GrossSalary.String())
}

func TestComputePayslip_TakeHomeComposition(t *testing.T) {
	t.Parallel()

	payslip, err := computePayslip(payslipInputs{
		Employee:         testEmployee(4_400_000),
		Period:           testPeriod(),
		TotalWorkingDays: 22,
		Attendance:       attendanceRecords(22, 0, 0),
		Reimbursements: []reimbursement.Reimbursement{
			{Amount: decimal.NewFromFloat(150_000.50), Description: "client visit transport"},
			{Amount: decimal.NewFromFloat(49_999.50), Description: "stationery purchase for office"},
		},
		Now:         time.Now(),
		ProcessedBy: "admin-id",
	})
	require.NoError(t, err)

	// gross 4,400,000 + reimbursements 200,000, deductions 0
	assert.Equal(t, "200000", payslip.TotalReimbursements.String())
	assert.Equal(t, "4600000", payslip.TotalTakeHome.String())
	assert.True(t, payslip.Deductions.IsZero())
	assert.True(t, payslip.NetSalary.Equal(payslip.GrossSalary))
	assert.Len(t, payslip.ReimbursementBreakdown, 2)
}

func TestComputePayslip_AbsentDaysContributeNothing(t *testing.T) {
	t.Parallel()

	// Absent rows carry a zero day weight; they show up in TotalDays but
	// never in daysWorked or the per-status counters.
	records := append(attendanceRecords(10, 0, 0), attendance.Attendance{Status: attendance.StatusAbsent})
	payslip, err := computePayslip(payslipInputs{
		Employee:         testEmployee(5_000_000),
		Period:           testPeriod(),
		TotalWorkingDays: 22,
		Attendance:       records,
		Now:              time.Now(),
		ProcessedBy:      "admin-id",
	})
	require.NoError(t, err)

	assert.True(t, payslip.DaysWorked.Equal(decimal.NewFromInt(10)), "daysWorked = %s", payslip.DaysWorked)
	assert.Equal(t, 11, payslip.AttendanceBreakdown.TotalDays)
	assert.Equal(t, 10, payslip.AttendanceBreakdown.PresentDays)
	assert.Equal(t, 0, payslip.AttendanceBreakdown.HalfDays)
}

func TestComputePayslip_NoAttendanceMeansZeroGross(t *testing.T) {
	t.Parallel()

	payslip, err := computePayslip(payslipInputs{
		Employee:         testEmployee(5_000_000),
		Period:           testPeriod(),
		TotalWorkingDays: 22,
		Now:              time.Now(),
		ProcessedBy:      "admin-id",
	})
	require.NoError(t, err)

	assert.True(t, payslip.DaysWorked.IsZero())
	assert.True(t, payslip.GrossSalary.IsZero())
	assert.True(t, payslip.TotalTakeHome.IsZero())
}

func TestComputePayslip_ZeroWorkingDaysFailsFast(t *testing.T) {
	t.Parallel()

	_, err := computePayslip(payslipInputs{
		Employee:         testEmployee(5_000_000),
		Period:           testPeriod(),
		TotalWorkingDays: 0,
		Now:              time.Now(),
		ProcessedBy:      "admin-id",
	})
	assert.ErrorIs(t, err, payroll.ErrNoWorkingDays)
}

func TestGeneratePayslipNumber(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1749541234567)
	number := generatePayslipNumber(
		"3f1c9a6e-0000-0000-0000-0000aaaa1111",
		"7b2d8c4f-0000-0000-0000-0000bbbb2222",
		now,
	)
	assert.Equal(t, "PAY-1111-2222-234567", number)
}
