package payroll

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/payrollhq/payslip-backend-go/internal/domain/overtime"
	"github.com/payrollhq/payslip-backend-go/internal/domain/payroll"
	"github.com/payrollhq/payslip-backend-go/internal/domain/user"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/database"
	"github.com/payrollhq/payslip-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run against a live database. Point TEST_DATABASE_URL at a
// database with the migrations applied; they are skipped otherwise.

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func truncateAll(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	tables := []string{"payroll", "payslip", "reimbursement", "overtime", "attendance", "attendance_period", "users"}
	for _, table := range tables {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestUser(t *testing.T, ctx context.Context, db *database.DB, role user.Role, name string, monthlySalary int64) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.Exec(ctx, `
		INSERT INTO users (id, username, name, password_hash, role, monthly_salary)
		VALUES ($1, $2, $3, 'x', $4, $5)
	`, id, "user-"+id[:8], name, string(role), monthlySalary)
	require.NoError(t, err)
	return id
}

func createTestPeriod(t *testing.T, ctx context.Context, db *database.DB, start, end time.Time) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.Exec(ctx, `
		INSERT INTO attendance_period (id, name, start_date, end_date)
		VALUES ($1, 'Test Period', $2, $3)
	`, id, start, end)
	require.NoError(t, err)
	return id
}

func createTestAttendance(t *testing.T, ctx context.Context, db *database.DB, employeeID, periodID string, date time.Time, status string) {
	t.Helper()
	_, err := db.Exec(ctx, `
		INSERT INTO attendance (employee_id, attendance_period_id, date, status)
		VALUES ($1, $2, $3, $4)
	`, employeeID, periodID, date, status)
	require.NoError(t, err)
}

func newTestService(db *database.DB) payroll.PayrollService {
	return NewPayrollService(
		db,
		postgresql.NewPayrollRepository(db),
		postgresql.NewPeriodRepository(db),
		postgresql.NewUserRepository(db),
		postgresql.NewAttendanceRepository(db),
		postgresql.NewOvertimeRepository(db),
		postgresql.NewReimbursementRepository(db),
	)
}

func TestRunPayroll(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	truncateAll(t, ctx, db)

	adminID := createTestUser(t, ctx, db, user.RoleAdmin, "Admin", 0)
	empID := createTestUser(t, ctx, db, user.RoleEmployee, "Alice", 5_000_000)

	// June 2025 has 21 working days
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	periodID := createTestPeriod(t, ctx, db, start, end)

	createTestAttendance(t, ctx, db, empID, periodID, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), "present")
	createTestAttendance(t, ctx, db, empID, periodID, time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), "late")
	createTestAttendance(t, ctx, db, empID, periodID, time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC), "half_day")

	overtimeRepo := postgresql.NewOvertimeRepository(db)
	_, err := overtimeRepo.Create(ctx, overtime.Overtime{
		EmployeeID:         empID,
		AttendancePeriodID: periodID,
		OvertimeDate:       time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		Hours:              decimal.NewFromFloat(2),
	})
	require.NoError(t, err)

	svc := newTestService(db)
	result, err := svc.RunPayroll(ctx, periodID, adminID)
	require.NoError(t, err)

	assert.NotEmpty(t, result.PayrollID)
	assert.Equal(t, 1, result.PayslipsGenerated)
	assert.Equal(t, 1, result.Summary.TotalEmployees)

	// dailySalary = 5,000,000/21; gross = daily*2.5; overtime = 2h * daily/8 * 2
	daily := decimal.NewFromInt(5_000_000).Div(decimal.NewFromInt(21))
	gross := daily.Mul(decimal.NewFromFloat(2.5))
	overtimePay := decimal.NewFromInt(2).Mul(daily.Div(decimal.NewFromInt(8))).Mul(decimal.NewFromInt(2))
	expected := gross.Add(overtimePay).Round(2)
	assert.True(t, result.Summary.TotalAmount.Equal(expected), "total = %s, want %s", result.Summary.TotalAmount, expected)

	// ledgers locked, period flagged
	var locked bool
	require.NoError(t, db.QueryRow(ctx, "SELECT is_locked FROM overtime WHERE employee_id = $1", empID).Scan(&locked))
	assert.True(t, locked)

	var processed bool
	require.NoError(t, db.QueryRow(ctx, "SELECT is_payroll_processed FROM attendance_period WHERE id = $1", periodID).Scan(&processed))
	assert.True(t, processed)
}

func TestRunPayroll_SecondRunConflicts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	truncateAll(t, ctx, db)

	adminID := createTestUser(t, ctx, db, user.RoleAdmin, "Admin", 0)
	createTestUser(t, ctx, db, user.RoleEmployee, "Bob", 4_000_000)

	periodID := createTestPeriod(t, ctx, db,
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	)

	svc := newTestService(db)
	_, err := svc.RunPayroll(ctx, periodID, adminID)
	require.NoError(t, err)

	_, err = svc.RunPayroll(ctx, periodID, adminID)
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyProcessed)
}

func TestRunPayroll_MidRunFailureRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	truncateAll(t, ctx, db)

	adminID := createTestUser(t, ctx, db, user.RoleAdmin, "Admin", 0)
	empA := createTestUser(t, ctx, db, user.RoleEmployee, "Alice", 5_000_000)
	empB := createTestUser(t, ctx, db, user.RoleEmployee, "Bob", 5_000_000)

	periodID := createTestPeriod(t, ctx, db,
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	)
	createTestAttendance(t, ctx, db, empA, periodID, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), "present")
	createTestAttendance(t, ctx, db, empB, periodID, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), "present")

	overtimeRepo := postgresql.NewOvertimeRepository(db)
	_, err := overtimeRepo.Create(ctx, overtime.Overtime{
		EmployeeID:         empA,
		AttendancePeriodID: periodID,
		OvertimeDate:       time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		Hours:              decimal.NewFromFloat(1.5),
	})
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO reimbursement (employee_id, attendance_period_id, amount, description)
		VALUES ($1, $2, 100000, 'transport for client meeting')
	`, empA, periodID)
	require.NoError(t, err)

	// A payslip row already present for the second employee (by name order)
	// makes its generation hit unique_employee_period_payslip mid-run, after
	// the first employee's payslip was already written inside the transaction.
	_, err = db.Exec(ctx, `
		INSERT INTO payslip (employee_id, attendance_period_id, payslip_number, basic_salary,
			total_working_days, days_worked, gross_salary, deductions, net_salary, total_take_home)
		VALUES ($1, $2, 'PAY-aaaa-bbbb-000000', 5000000, 21, 21, 5000000, 0, 5000000, 5000000)
	`, empB, periodID)
	require.NoError(t, err)

	svc := newTestService(db)
	_, err = svc.RunPayroll(ctx, periodID, adminID)
	assert.ErrorIs(t, err, payroll.ErrPayslipExists)

	// The failed run leaves nothing behind: no payroll row, no payslip for
	// the employee processed before the failure, ledgers unlocked, period
	// still open.
	var payrollCount int
	require.NoError(t, db.QueryRow(ctx, "SELECT COUNT(*) FROM payroll").Scan(&payrollCount))
	assert.Equal(t, 0, payrollCount)

	var alicePayslips int
	require.NoError(t, db.QueryRow(ctx, "SELECT COUNT(*) FROM payslip WHERE employee_id = $1", empA).Scan(&alicePayslips))
	assert.Equal(t, 0, alicePayslips)

	var payslipCount int
	require.NoError(t, db.QueryRow(ctx, "SELECT COUNT(*) FROM payslip").Scan(&payslipCount))
	assert.Equal(t, 1, payslipCount, "only the pre-existing row survives")

	var overtimeLocked bool
	require.NoError(t, db.QueryRow(ctx, "SELECT is_locked FROM overtime WHERE employee_id = $1", empA).Scan(&overtimeLocked))
	assert.False(t, overtimeLocked)

	var reimbursementLocked bool
	require.NoError(t, db.QueryRow(ctx, "SELECT is_locked FROM reimbursement WHERE employee_id = $1", empA).Scan(&reimbursementLocked))
	assert.False(t, reimbursementLocked)

	var processed bool
	require.NoError(t, db.QueryRow(ctx, "SELECT is_payroll_processed FROM attendance_period WHERE id = $1", periodID).Scan(&processed))
	assert.False(t, processed)
}

func TestRunPayroll_PeriodNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	truncateAll(t, ctx, db)

	adminID := createTestUser(t, ctx, db, user.RoleAdmin, "Admin", 0)

	svc := newTestService(db)
	_, err := svc.RunPayroll(ctx, uuid.NewString(), adminID)
	assert.Error(t, err)
}

func TestRunPayroll_LocksOvertimeAgainstUpdates(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	truncateAll(t, ctx, db)

	adminID := createTestUser(t, ctx, db, user.RoleAdmin, "Admin", 0)
	empID := createTestUser(t, ctx, db, user.RoleEmployee, "Carol", 6_000_000)

	periodID := createTestPeriod(t, ctx, db,
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	)
	createTestAttendance(t, ctx, db, empID, periodID, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), "present")

	overtimeRepo := postgresql.NewOvertimeRepository(db)
	rec, err := overtimeRepo.Create(ctx, overtime.Overtime{
		EmployeeID:         empID,
		AttendancePeriodID: periodID,
		OvertimeDate:       time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		Hours:              decimal.NewFromFloat(1.5),
	})
	require.NoError(t, err)

	svc := newTestService(db)
	_, err = svc.RunPayroll(ctx, periodID, adminID)
	require.NoError(t, err)

	rec.Hours = decimal.NewFromFloat(3)
	err = overtimeRepo.UpdateHours(ctx, rec)
	assert.ErrorIs(t, err, overtime.ErrOvertimeLocked)

	err = overtimeRepo.Delete(ctx, rec.ID)
	assert.ErrorIs(t, err, overtime.ErrOvertimeLocked)
}

func TestGetEmployeePayslip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	truncateAll(t, ctx, db)

	adminID := createTestUser(t, ctx, db, user.RoleAdmin, "Admin", 0)
	empID := createTestUser(t, ctx, db, user.RoleEmployee, "Dave", 5_250_000)

	periodID := createTestPeriod(t, ctx, db,
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	)
	createTestAttendance(t, ctx, db, empID, periodID, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), "present")

	svc := newTestService(db)

	// Unprocessed period has no payslips yet.
	_, err := svc.GetEmployeePayslip(ctx, empID, periodID)
	assert.ErrorIs(t, err, payroll.ErrPayrollNotProcessed)

	_, err = svc.RunPayroll(ctx, periodID, adminID)
	require.NoError(t, err)

	result, err := svc.GetEmployeePayslip(ctx, empID, periodID)
	require.NoError(t, err)

	assert.Equal(t, "Dave", result.PayslipInfo.EmployeeName)
	assert.Equal(t, 21, result.SalaryBreakdown.TotalWorkingDays)
	assert.True(t, result.SalaryBreakdown.DaysWorked.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, 1, result.AttendanceBreakdown.Summary.PresentDays)
	assert.True(t, result.TotalTakeHome.Equal(result.Calculation.TotalTakeHome))
}

func TestGetPayslipSummary(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	truncateAll(t, ctx, db)

	adminID := createTestUser(t, ctx, db, user.RoleAdmin, "Admin", 0)
	empA := createTestUser(t, ctx, db, user.RoleEmployee, "Zoe", 4_200_000)
	empB := createTestUser(t, ctx, db, user.RoleEmployee, "Andy", 4_200_000)

	periodID := createTestPeriod(t, ctx, db,
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	)
	createTestAttendance(t, ctx, db, empA, periodID, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), "present")
	createTestAttendance(t, ctx, db, empB, periodID, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), "present")

	svc := newTestService(db)
	_, err := svc.RunPayroll(ctx, periodID, adminID)
	require.NoError(t, err)

	result, err := svc.GetPayslipSummary(ctx, periodID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.TotalEmployees)
	require.Len(t, result.Employees, 2)
	// sorted by name ascending
	assert.Equal(t, "Andy", result.Employees[0].EmployeeName)
	assert.Equal(t, "Zoe", result.Employees[1].EmployeeName)

	expectedTotal := result.Employees[0].TakeHomePay.Add(result.Employees[1].TakeHomePay)
	assert.True(t, result.Summary.TotalTakeHomePay.Equal(expectedTotal))
	assert.True(t, result.Summary.AverageTakeHomePay.Equal(expectedTotal.Div(decimal.NewFromInt(2)).Round(2)))
}

func TestGetPayrollRecord(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	truncateAll(t, ctx, db)

	adminID := createTestUser(t, ctx, db, user.RoleAdmin, "Admin", 0)
	empID := createTestUser(t, ctx, db, user.RoleEmployee, "Carol", 4_200_000)

	periodID := createTestPeriod(t, ctx, db,
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	)
	createTestAttendance(t, ctx, db, empID, periodID, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), "present")

	svc := newTestService(db)

	// Before the run neither lookup finds anything.
	_, err := svc.GetPayrollByPeriod(ctx, periodID)
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
	_, err = svc.GetPayroll(ctx, uuid.NewString())
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)

	run, err := svc.RunPayroll(ctx, periodID, adminID)
	require.NoError(t, err)

	byID, err := svc.GetPayroll(ctx, run.PayrollID)
	require.NoError(t, err)
	assert.Equal(t, run.PayrollID, byID.PayrollID)
	assert.Equal(t, periodID, byID.AttendancePeriodID)
	assert.Equal(t, 1, byID.TotalEmployees)
	assert.Equal(t, adminID, byID.ProcessedBy)
	assert.True(t, byID.TotalAmount.Equal(run.Summary.TotalAmount))

	byPeriod, err := svc.GetPayrollByPeriod(ctx, periodID)
	require.NoError(t, err)
	assert.Equal(t, byID, byPeriod)
}
