package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/payrollhq/payslip-backend-go/internal/domain/attendance"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, attendance_period_id, date, check_in, check_out,
	status, notes, created_by, updated_by, created_at, updated_at`

func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, attendance_period_id, date, check_in, check_out, status, notes, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + attendanceColumns

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.AttendancePeriodID, a.Date, a.CheckIn, a.CheckOut, a.Status, a.Notes, a.CreatedBy, a.UpdatedBy,
	).Scan(
		&created.ID, &created.EmployeeID, &created.AttendancePeriodID, &created.Date,
		&created.CheckIn, &created.CheckOut, &created.Status, &created.Notes,
		&created.CreatedBy, &created.UpdatedBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "unique_employee_period_date") {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) GetByEmployeePeriodDate(ctx context.Context, employeeID, periodID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1 AND attendance_period_id = $2 AND date = $3
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, periodID, date).Scan(
		&a.ID, &a.EmployeeID, &a.AttendancePeriodID, &a.Date,
		&a.CheckIn, &a.CheckOut, &a.Status, &a.Notes,
		&a.CreatedBy, &a.UpdatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1 AND attendance_period_id = $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.AttendancePeriodID, &a.Date,
			&a.CheckIn, &a.CheckOut, &a.Status, &a.Notes,
			&a.CreatedBy, &a.UpdatedBy, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}
