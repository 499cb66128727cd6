package overtime

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/payrollhq/payslip-backend-go/internal/domain/overtime"
	"github.com/payrollhq/payslip-backend-go/internal/domain/period"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/database"
	"github.com/payrollhq/payslip-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOvertimeTestDB(t *testing.T) *database.DB {
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

type overtimeFixture struct {
	db       *database.DB
	svc      overtime.OvertimeService
	empID    string
	periodID string
}

func setupOvertimeFixture(t *testing.T) overtimeFixture {
	t.Helper()
	db := newOvertimeTestDB(t)
	ctx := context.Background()

	tables := []string{"overtime", "attendance", "attendance_period", "users"}
	for _, table := range tables {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}

	empID := uuid.NewString()
	_, err := db.Exec(ctx, `
		INSERT INTO users (id, username, name, password_hash, role, monthly_salary)
		VALUES ($1, $2, 'Overtime Tester', 'x', 'employee', 5000000)
	`, empID, "ot-"+empID[:8])
	require.NoError(t, err)

	periodID := uuid.NewString()
	_, err = db.Exec(ctx, `
		INSERT INTO attendance_period (id, name, start_date, end_date)
		VALUES ($1, 'June 2025', '2025-06-01', '2025-06-30')
	`, periodID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO attendance (employee_id, attendance_period_id, date, status)
		VALUES ($1, $2, '2025-06-02', 'present')
	`, empID, periodID)
	require.NoError(t, err)

	svc := NewOvertimeService(
		postgresql.NewOvertimeRepository(db),
		postgresql.NewAttendanceRepository(db),
		postgresql.NewPeriodRepository(db),
	)

	return overtimeFixture{db: db, svc: svc, empID: empID, periodID: periodID}
}

func TestSubmitOvertime(t *testing.T) {
	f := setupOvertimeFixture(t)
	ctx := context.Background()

	created, err := f.svc.Submit(ctx, overtime.SubmitOvertimeRequest{
		EmployeeID:         f.empID,
		AttendancePeriodID: f.periodID,
		OvertimeDate:       "2025-06-02",
		Hours:              decimal.NewFromFloat(2.5),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Hours.Equal(decimal.NewFromFloat(2.5)))
	assert.False(t, created.IsLocked)
}

func TestSubmitOvertime_RequiresAttendance(t *testing.T) {
	f := setupOvertimeFixture(t)
	ctx := context.Background()

	// 2025-06-03 has no attendance record
	_, err := f.svc.Submit(ctx, overtime.SubmitOvertimeRequest{
		EmployeeID:         f.empID,
		AttendancePeriodID: f.periodID,
		OvertimeDate:       "2025-06-03",
		Hours:              decimal.NewFromFloat(1),
	})
	assert.ErrorIs(t, err, overtime.ErrNoAttendanceForDate)
}

func TestSubmitOvertime_DateOutsidePeriod(t *testing.T) {
	f := setupOvertimeFixture(t)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, overtime.SubmitOvertimeRequest{
		EmployeeID:         f.empID,
		AttendancePeriodID: f.periodID,
		OvertimeDate:       "2025-07-01",
		Hours:              decimal.NewFromFloat(1),
	})
	assert.ErrorIs(t, err, overtime.ErrDateOutsidePeriod)
}

func TestSubmitOvertime_DuplicateDate(t *testing.T) {
	f := setupOvertimeFixture(t)
	ctx := context.Background()

	req := overtime.SubmitOvertimeRequest{
		EmployeeID:         f.empID,
		AttendancePeriodID: f.periodID,
		OvertimeDate:       "2025-06-02",
		Hours:              decimal.NewFromFloat(1),
	}
	_, err := f.svc.Submit(ctx, req)
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, req)
	assert.ErrorIs(t, err, overtime.ErrOvertimeExists)
}

func TestSubmitOvertime_ProcessedPeriodRejected(t *testing.T) {
	f := setupOvertimeFixture(t)
	ctx := context.Background()

	_, err := f.db.Exec(ctx, `
		UPDATE attendance_period SET is_payroll_processed = true, processed_at = NOW() WHERE id = $1
	`, f.periodID)
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, overtime.SubmitOvertimeRequest{
		EmployeeID:         f.empID,
		AttendancePeriodID: f.periodID,
		OvertimeDate:       "2025-06-02",
		Hours:              decimal.NewFromFloat(1),
	})
	assert.ErrorIs(t, err, period.ErrPeriodProcessed)
}

func TestUpdateOvertime_OwnershipEnforced(t *testing.T) {
	f := setupOvertimeFixture(t)
	ctx := context.Background()

	created, err := f.svc.Submit(ctx, overtime.SubmitOvertimeRequest{
		EmployeeID:         f.empID,
		AttendancePeriodID: f.periodID,
		OvertimeDate:       "2025-06-02",
		Hours:              decimal.NewFromFloat(1),
	})
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, overtime.UpdateOvertimeRequest{
		ID:    created.ID,
		Hours: decimal.NewFromFloat(2),
	}, uuid.NewString())
	assert.ErrorIs(t, err, overtime.ErrNotOvertimeOwner)
}

func TestDeleteOvertime(t *testing.T) {
	f := setupOvertimeFixture(t)
	ctx := context.Background()

	created, err := f.svc.Submit(ctx, overtime.SubmitOvertimeRequest{
		EmployeeID:         f.empID,
		AttendancePeriodID: f.periodID,
		OvertimeDate:       "2025-06-02",
		Hours:              decimal.NewFromFloat(1),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID, f.empID))

	_, err = f.svc.Update(ctx, overtime.UpdateOvertimeRequest{
		ID:    created.ID,
		Hours: decimal.NewFromFloat(2),
	}, f.empID)
	assert.ErrorIs(t, err, overtime.ErrOvertimeNotFound)

	// a fresh submission for the same date is allowed again
	_, err = f.svc.Submit(ctx, overtime.SubmitOvertimeRequest{
		EmployeeID:         f.empID,
		AttendancePeriodID: f.periodID,
		OvertimeDate:       "2025-06-02",
		Hours:              decimal.NewFromFloat(3),
	})
	assert.NoError(t, err)
}

func TestSubmitOvertime_HoursValidation(t *testing.T) {
	f := setupOvertimeFixture(t)
	ctx := context.Background()

	for _, hours := range []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromFloat(-1),
		decimal.NewFromFloat(3.01),
		decimal.NewFromFloat(1.234),
	} {
		_, err := f.svc.Submit(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID:         f.empID,
			AttendancePeriodID: f.periodID,
			OvertimeDate:       "2025-06-02",
			Hours:              hours,
		})
		assert.Error(t, err, "hours = %s", hours)
	}
}
