package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/payrollhq/payslip-backend-go/internal/domain/auth"
	"github.com/payrollhq/payslip-backend-go/internal/domain/reimbursement"
	"github.com/payrollhq/payslip-backend-go/internal/handler/http/response"
)

type ReimbursementHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type ReimbursementHandlerImpl struct {
	reimbursementService reimbursement.ReimbursementService
}

func NewReimbursementHandler(reimbursementService reimbursement.ReimbursementService) ReimbursementHandler {
	return &ReimbursementHandlerImpl{reimbursementService: reimbursementService}
}

// Submit implements ReimbursementHandler.
func (h *ReimbursementHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq reimbursement.SubmitReimbursementRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("SubmitReimbursement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	submitReq.EmployeeID = userID

	created, err := h.reimbursementService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("SubmitReimbursement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Reimbursement submitted", "reimbursement_id", created.ID, "employee_id", userID)
	response.Created(w, "Reimbursement submitted", toReimbursementResponse(created))
}

// Update implements ReimbursementHandler.
func (h *ReimbursementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq reimbursement.UpdateReimbursementRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateReimbursement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "reimbursementId")

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	updated, err := h.reimbursementService.Update(r.Context(), updateReq, userID)
	if err != nil {
		slog.Error("UpdateReimbursement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reimbursement updated", toReimbursementResponse(updated))
}

// Delete implements ReimbursementHandler.
func (h *ReimbursementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	reimbursementID := chi.URLParam(r, "reimbursementId")

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.reimbursementService.Delete(r.Context(), reimbursementID, userID); err != nil {
		slog.Error("DeleteReimbursement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reimbursement deleted", nil)
}

// ListMine implements ReimbursementHandler.
func (h *ReimbursementHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	records, err := h.reimbursementService.ListByEmployeePeriod(r.Context(), userID, periodID)
	if err != nil {
		slog.Error("ListReimbursements service error", "error", err)
		response.HandleError(w, err)
		return
	}

	result := make([]reimbursement.ReimbursementResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, toReimbursementResponse(rec))
	}
	response.Success(w, result)
}

func toReimbursementResponse(rec reimbursement.Reimbursement) reimbursement.ReimbursementResponse {
	return reimbursement.ReimbursementResponse{
		ID:                 rec.ID,
		EmployeeID:         rec.EmployeeID,
		AttendancePeriodID: rec.AttendancePeriodID,
		Amount:             rec.Amount,
		Description:        rec.Description,
		IsLocked:           rec.IsLocked,
	}
}
