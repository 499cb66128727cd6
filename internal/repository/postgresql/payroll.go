package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/payrollhq/payslip-backend-go/internal/domain/payroll"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== PAYROLL ==========

func (r *payrollRepository) CreatePayroll(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll (attendance_period_id, total_employees, total_amount, processed_at, processed_by, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, attendance_period_id, total_employees, total_amount, processed_at, processed_by,
			created_by, created_at, updated_at
	`

	var created payroll.Payroll
	err := q.QueryRow(ctx, query,
		p.AttendancePeriodID, p.TotalEmployees, p.TotalAmount, p.ProcessedAt, p.ProcessedBy, p.CreatedBy,
	).Scan(
		&created.ID, &created.AttendancePeriodID, &created.TotalEmployees, &created.TotalAmount,
		&created.ProcessedAt, &created.ProcessedBy,
		&created.CreatedBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "unique_payroll_period") {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyProcessed
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetPayrollByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_period_id, total_employees, total_amount, processed_at, processed_by,
			created_by, created_at, updated_at
		FROM payroll
		WHERE id = $1
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.AttendancePeriodID, &p.TotalEmployees, &p.TotalAmount,
		&p.ProcessedAt, &p.ProcessedBy,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetPayrollByPeriodID(ctx context.Context, periodID string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_period_id, total_employees, total_amount, processed_at, processed_by,
			created_by, created_at, updated_at
		FROM payroll
		WHERE attendance_period_id = $1
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, periodID).Scan(
		&p.ID, &p.AttendancePeriodID, &p.TotalEmployees, &p.TotalAmount,
		&p.ProcessedAt, &p.ProcessedBy,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotProcessed
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

// ========== PAYSLIPS ==========

func (r *payrollRepository) CreatePayslip(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	attendanceJSON, err := json.Marshal(p.AttendanceBreakdown)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to marshal attendance breakdown: %w", err)
	}
	overtimeJSON, err := json.Marshal(p.OvertimeBreakdown)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to marshal overtime breakdown: %w", err)
	}
	reimbursementJSON, err := json.Marshal(p.ReimbursementBreakdown)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to marshal reimbursement breakdown: %w", err)
	}

	query := `
		INSERT INTO payslip (
			employee_id, attendance_period_id, payslip_number, basic_salary,
			total_working_days, days_worked, gross_salary, deductions, net_salary,
			overtime_pay, total_overtime_hours, total_reimbursements, total_take_home,
			attendance_breakdown, overtime_breakdown, reimbursement_breakdown,
			status, generated_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at, updated_at
	`

	created := p
	err = q.QueryRow(ctx, query,
		p.EmployeeID, p.AttendancePeriodID, p.PayslipNumber, p.BasicSalary,
		p.TotalWorkingDays, p.DaysWorked, p.GrossSalary, p.Deductions, p.NetSalary,
		p.OvertimePay, p.TotalOvertimeHours, p.TotalReimbursements, p.TotalTakeHome,
		attendanceJSON, overtimeJSON, reimbursementJSON,
		p.Status, p.GeneratedAt, p.CreatedBy,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "unique_employee_period_payslip") {
			return payroll.Payslip{}, payroll.ErrPayslipExists
		}
		if isUniqueViolation(err, "unique_payslip_number") {
			return payroll.Payslip{}, payroll.ErrPayslipNumberTaken
		}
		return payroll.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return created, nil
}

const payslipColumns = `p.id, p.employee_id, p.attendance_period_id, p.payslip_number, p.basic_salary,
	p.total_working_days, p.days_worked, p.gross_salary, p.deductions, p.net_salary,
	p.overtime_pay, p.total_overtime_hours, p.total_reimbursements, p.total_take_home,
	p.attendance_breakdown, p.overtime_breakdown, p.reimbursement_breakdown,
	p.status, p.generated_at, p.sent_at, p.created_by, p.created_at, p.updated_at,
	u.name AS employee_name`

func (r *payrollRepository) GetPayslipByEmployeePeriod(ctx context.Context, employeeID, periodID string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslip p
		JOIN users u ON u.id = p.employee_id
		WHERE p.employee_id = $1 AND p.attendance_period_id = $2
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, employeeID, periodID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListPayslipsByPeriod(ctx context.Context, periodID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslip p
		JOIN users u ON u.id = p.employee_id
		WHERE p.attendance_period_id = $1
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}

	return payslips, rows.Err()
}

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	var attendanceJSON, overtimeJSON, reimbursementJSON []byte

	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.AttendancePeriodID, &p.PayslipNumber, &p.BasicSalary,
		&p.TotalWorkingDays, &p.DaysWorked, &p.GrossSalary, &p.Deductions, &p.NetSalary,
		&p.OvertimePay, &p.TotalOvertimeHours, &p.TotalReimbursements, &p.TotalTakeHome,
		&attendanceJSON, &overtimeJSON, &reimbursementJSON,
		&p.Status, &p.GeneratedAt, &p.SentAt, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName,
	)
	if err != nil {
		return payroll.Payslip{}, err
	}

	if len(attendanceJSON) > 0 {
		if err := json.Unmarshal(attendanceJSON, &p.AttendanceBreakdown); err != nil {
			return payroll.Payslip{}, fmt.Errorf("failed to unmarshal attendance breakdown: %w", err)
		}
	}
	if len(overtimeJSON) > 0 {
		if err := json.Unmarshal(overtimeJSON, &p.OvertimeBreakdown); err != nil {
			return payroll.Payslip{}, fmt.Errorf("failed to unmarshal overtime breakdown: %w", err)
		}
	}
	if len(reimbursementJSON) > 0 {
		if err := json.Unmarshal(reimbursementJSON, &p.ReimbursementBreakdown); err != nil {
			return payroll.Payslip{}, fmt.Errorf("failed to unmarshal reimbursement breakdown: %w", err)
		}
	}

	return p, nil
}
