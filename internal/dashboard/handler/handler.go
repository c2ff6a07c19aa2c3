// Package handler wires the dashboard stats endpoint to the aggregation
// engine.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/dashboard/models"
	"hrms/internal/transport/http/shared"
)

// Service defines the aggregation operations the handler needs.
type Service interface {
	Stats(ctx context.Context) (*models.Stats, error)
}

// Handler handles dashboard endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new dashboard Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register registers the dashboard routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/dashboard/stats", h.handleStats)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute dashboard stats", "error", err.Error())
		shared.WriteError(w, err)
		return
	}
	if stats.Departments == nil {
		stats.Departments = []models.DepartmentCount{}
	}
	if stats.RecentAttendance == nil {
		stats.RecentAttendance = []models.RecentEntry{}
	}
	shared.WriteJSON(w, http.StatusOK, stats)
}
