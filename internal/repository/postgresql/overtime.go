package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/payrollhq/payslip-backend-go/internal/domain/overtime"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `id, employee_id, attendance_period_id, overtime_date, hours, is_locked,
	created_by, updated_by, created_at, updated_at`

func (r *overtimeRepository) Create(ctx context.Context, o overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime (employee_id, attendance_period_id, overtime_date, hours, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + overtimeColumns

	var created overtime.Overtime
	err := q.QueryRow(ctx, query,
		o.EmployeeID, o.AttendancePeriodID, o.OvertimeDate, o.Hours, o.CreatedBy, o.UpdatedBy,
	).Scan(
		&created.ID, &created.EmployeeID, &created.AttendancePeriodID, &created.OvertimeDate,
		&created.Hours, &created.IsLocked,
		&created.CreatedBy, &created.UpdatedBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "unique_employee_period_overtime_date") {
			return overtime.Overtime{}, overtime.ErrOvertimeExists
		}
		return overtime.Overtime{}, fmt.Errorf("failed to create overtime: %w", err)
	}

	return created, nil
}

func (r *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime
		WHERE id = $1
	`

	var o overtime.Overtime
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.EmployeeID, &o.AttendancePeriodID, &o.OvertimeDate,
		&o.Hours, &o.IsLocked,
		&o.CreatedBy, &o.UpdatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.Overtime{}, overtime.ErrOvertimeNotFound
		}
		return overtime.Overtime{}, fmt.Errorf("failed to get overtime: %w", err)
	}

	return o, nil
}

func (r *overtimeRepository) GetByEmployeePeriodDate(ctx context.Context, employeeID, periodID string, date time.Time) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime
		WHERE employee_id = $1 AND attendance_period_id = $2 AND overtime_date = $3
	`

	var o overtime.Overtime
	err := q.QueryRow(ctx, query, employeeID, periodID, date).Scan(
		&o.ID, &o.EmployeeID, &o.AttendancePeriodID, &o.OvertimeDate,
		&o.Hours, &o.IsLocked,
		&o.CreatedBy, &o.UpdatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.Overtime{}, overtime.ErrOvertimeNotFound
		}
		return overtime.Overtime{}, fmt.Errorf("failed to get overtime: %w", err)
	}

	return o, nil
}

func (r *overtimeRepository) ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime
		WHERE employee_id = $1 AND attendance_period_id = $2
		ORDER BY overtime_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime: %w", err)
	}
	defer rows.Close()

	var records []overtime.Overtime
	for rows.Next() {
		var o overtime.Overtime
		if err := rows.Scan(
			&o.ID, &o.EmployeeID, &o.AttendancePeriodID, &o.OvertimeDate,
			&o.Hours, &o.IsLocked,
			&o.CreatedBy, &o.UpdatedBy, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan overtime: %w", err)
		}
		records = append(records, o)
	}

	return records, rows.Err()
}

func (r *overtimeRepository) UpdateHours(ctx context.Context, o overtime.Overtime) error {
	q := GetQuerier(ctx, r.db)

	// The is_locked predicate makes the lock guard hold even if a payroll run
	// locked the row after the service loaded it.
	query := `
		UPDATE overtime
		SET hours = $2, updated_by = $3, updated_at = NOW()
		WHERE id = $1 AND is_locked = false
	`

	tag, err := q.Exec(ctx, query, o.ID, o.Hours, o.UpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update overtime: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeLocked
	}

	return nil
}

func (r *overtimeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM overtime WHERE id = $1 AND is_locked = false`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeLocked
	}

	return nil
}

func (r *overtimeRepository) LockByPeriod(ctx context.Context, periodID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE overtime SET is_locked = true, updated_at = NOW() WHERE attendance_period_id = $1`

	if _, err := q.Exec(ctx, query, periodID); err != nil {
		return fmt.Errorf("failed to lock overtime records: %w", err)
	}

	return nil
}
