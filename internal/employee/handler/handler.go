// Package handler wires HTTP endpoints to the employee registry. It
// delegates to the service without embedding business logic so transport
// concerns remain isolated.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/employee/models"
	"hrms/internal/transport/http/shared"
	dErrors "hrms/pkg/domain-errors"
)

// Service defines the registry operations the handler needs.
type Service interface {
	Create(ctx context.Context, employeeID, name, email, department string) (*models.Employee, error)
	List(ctx context.Context) ([]*models.Employee, error)
	Delete(ctx context.Context, employeeID string) (bool, error)
}

// Handler handles employee endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new employee Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register registers the employee routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/employees", h.handleCreate)
	r.Get("/employees", h.handleList)
	r.Delete("/employees/{employeeID}", h.handleDelete)
}

type createRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	employee, err := h.service.Create(ctx, req.EmployeeID, req.Name, req.Email, req.Department)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInternal) || dErrors.HasCode(err, dErrors.CodeUnavailable) {
			h.logger.ErrorContext(ctx, "failed to create employee", "error", err.Error())
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, employee)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employees, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list employees", "error", err.Error())
		shared.WriteError(w, err)
		return
	}
	if employees == nil {
		employees = []*models.Employee{}
	}
	shared.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	employeeID := chi.URLParam(r, "employeeID")

	deleted, err := h.service.Delete(ctx, employeeID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete employee",
			"employee_id", employeeID,
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	if !deleted {
		shared.WriteError(w, dErrors.New(dErrors.CodeNotFound, "employee with id "+employeeID+" not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
