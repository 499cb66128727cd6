package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/payrollhq/payslip-backend-go/internal/domain/auth"
	"github.com/payrollhq/payslip-backend-go/internal/domain/period"
	"github.com/payrollhq/payslip-backend-go/internal/handler/http/response"
)

type PeriodHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type PeriodHandlerImpl struct {
	periodService period.PeriodService
}

func NewPeriodHandler(periodService period.PeriodService) PeriodHandler {
	return &PeriodHandlerImpl{periodService: periodService}
}

// Create implements PeriodHandler.
func (h *PeriodHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq period.CreatePeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreatePeriod decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	created, err := h.periodService.Create(r.Context(), createReq, userID)
	if err != nil {
		slog.Error("CreatePeriod service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance period created", "period_id", created.ID)
	response.Created(w, "Attendance period created", toPeriodResponse(created))
}

// List implements PeriodHandler.
func (h *PeriodHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	periods, err := h.periodService.List(r.Context())
	if err != nil {
		slog.Error("ListPeriods service error", "error", err)
		response.HandleError(w, err)
		return
	}

	result := make([]period.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, toPeriodResponse(p))
	}
	response.Success(w, result)
}

// GetByID implements PeriodHandler.
func (h *PeriodHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")

	p, err := h.periodService.GetByID(r.Context(), periodID)
	if err != nil {
		slog.Error("GetPeriod service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toPeriodResponse(p))
}

func toPeriodResponse(p period.AttendancePeriod) period.PeriodResponse {
	var processedAt *string
	if p.ProcessedAt != nil {
		str := p.ProcessedAt.Format(time.RFC3339)
		processedAt = &str
	}

	return period.PeriodResponse{
		ID:                 p.ID,
		Name:               p.Name,
		StartDate:          p.StartDate.Format("2006-01-02"),
		EndDate:            p.EndDate.Format("2006-01-02"),
		IsPayrollProcessed: p.IsPayrollProcessed,
		ProcessedAt:        processedAt,
	}
}
