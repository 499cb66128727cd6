package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/payrollhq/payslip-backend-go/internal/domain/attendance"
	"github.com/payrollhq/payslip-backend-go/internal/domain/auth"
	"github.com/payrollhq/payslip-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Submit implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq attendance.SubmitAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("SubmitAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	submitReq.EmployeeID = userID

	created, err := h.attendanceService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("SubmitAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance submitted", "attendance_id", created.ID, "employee_id", userID)
	response.Created(w, "Attendance submitted", toAttendanceResponse(created))
}

// ListMine implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	records, err := h.attendanceService.ListByEmployeePeriod(r.Context(), userID, periodID)
	if err != nil {
		slog.Error("ListAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, toAttendanceResponse(rec))
	}
	response.Success(w, result)
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                 a.ID,
		EmployeeID:         a.EmployeeID,
		AttendancePeriodID: a.AttendancePeriodID,
		Date:               a.Date.Format("2006-01-02"),
		CheckIn:            formatTimeOfDay(a.CheckIn),
		CheckOut:           formatTimeOfDay(a.CheckOut),
		Status:             string(a.Status),
		Notes:              a.Notes,
	}
}

func formatTimeOfDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	str := t.Format("15:04:05")
	return &str
}
