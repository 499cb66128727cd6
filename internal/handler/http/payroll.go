package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/payrollhq/payslip-backend-go/internal/domain/auth"
	"github.com/payrollhq/payslip-backend-go/internal/domain/payroll"
	"github.com/payrollhq/payslip-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	RunPayroll(w http.ResponseWriter, r *http.Request)
	GetPayroll(w http.ResponseWriter, r *http.Request)
	GetPayrollByPeriod(w http.ResponseWriter, r *http.Request)
	GetMyPayslip(w http.ResponseWriter, r *http.Request)
	GetPayslipSummary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// RunPayroll implements PayrollHandler.
func (h *PayrollHandlerImpl) RunPayroll(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.payrollService.RunPayroll(r.Context(), periodID, userID)
	if err != nil {
		slog.Error("RunPayroll service error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll processed",
		"payroll_id", result.PayrollID,
		"period_id", periodID,
		"payslips_generated", result.PayslipsGenerated,
	)
	response.Created(w, "Payroll processed", result)
}

// GetPayroll implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "payrollId")

	result, err := h.payrollService.GetPayroll(r.Context(), payrollID)
	if err != nil {
		slog.Error("GetPayroll service error", "error", err, "payroll_id", payrollID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayrollByPeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPayrollByPeriod(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")

	result, err := h.payrollService.GetPayrollByPeriod(r.Context(), periodID)
	if err != nil {
		slog.Error("GetPayrollByPeriod service error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyPayslip implements PayrollHandler.
func (h *PayrollHandlerImpl) GetMyPayslip(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.payrollService.GetEmployeePayslip(r.Context(), userID, periodID)
	if err != nil {
		slog.Error("GetMyPayslip service error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayslipSummary implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPayslipSummary(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")

	result, err := h.payrollService.GetPayslipSummary(r.Context(), periodID)
	if err != nil {
		slog.Error("GetPayslipSummary service error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
