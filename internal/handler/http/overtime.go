package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/payrollhq/payslip-backend-go/internal/domain/auth"
	"github.com/payrollhq/payslip-backend-go/internal/domain/overtime"
	"github.com/payrollhq/payslip-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

// Submit implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq overtime.SubmitOvertimeRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("SubmitOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	submitReq.EmployeeID = userID

	created, err := h.overtimeService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("SubmitOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Overtime submitted", "overtime_id", created.ID, "employee_id", userID)
	response.Created(w, "Overtime submitted", toOvertimeResponse(created))
}

// Update implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq overtime.UpdateOvertimeRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "overtimeId")

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	updated, err := h.overtimeService.Update(r.Context(), updateReq, userID)
	if err != nil {
		slog.Error("UpdateOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime updated", toOvertimeResponse(updated))
}

// Delete implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	overtimeID := chi.URLParam(r, "overtimeId")

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.overtimeService.Delete(r.Context(), overtimeID, userID); err != nil {
		slog.Error("DeleteOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime deleted", nil)
}

// ListMine implements OvertimeHandler.
func (h *OvertimeHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	records, err := h.overtimeService.ListByEmployeePeriod(r.Context(), userID, periodID)
	if err != nil {
		slog.Error("ListOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	result := make([]overtime.OvertimeResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, toOvertimeResponse(rec))
	}
	response.Success(w, result)
}

func toOvertimeResponse(o overtime.Overtime) overtime.OvertimeResponse {
	return overtime.OvertimeResponse{
		ID:                 o.ID,
		EmployeeID:         o.EmployeeID,
		AttendancePeriodID: o.AttendancePeriodID,
		OvertimeDate:       o.OvertimeDate.Format("2006-01-02"),
		Hours:              o.Hours,
		IsLocked:           o.IsLocked,
	}
}
