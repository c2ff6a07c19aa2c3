// Package handler wires HTTP endpoints to the attendance ledger.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/attendance/models"
	"hrms/internal/transport/http/shared"
	dErrors "hrms/pkg/domain-errors"
)

// Service defines the ledger operations the handler needs.
type Service interface {
	Record(ctx context.Context, employeeID string, date time.Time, status string) (*models.Attendance, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]*models.Attendance, error)
}

// Handler handles attendance endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new attendance Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register registers the attendance routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/attendance", h.handleRecord)
	r.Get("/attendance/{employeeID}", h.handleList)
}

type recordRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	record, err := h.service.Record(ctx, req.EmployeeID, date, req.Status)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInternal) || dErrors.HasCode(err, dErrors.CodeUnavailable) {
			h.logger.ErrorContext(ctx, "failed to record attendance",
				"employee_id", req.EmployeeID,
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, record)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	employeeID := chi.URLParam(r, "employeeID")

	records, err := h.service.ListForEmployee(ctx, employeeID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInternal) {
			h.logger.ErrorContext(ctx, "failed to list attendance",
				"employee_id", employeeID,
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}
	if records == nil {
		records = []*models.Attendance{}
	}
	shared.WriteJSON(w, http.StatusOK, records)
}
