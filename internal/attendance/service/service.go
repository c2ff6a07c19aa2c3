// Package service implements the attendance ledger: creation guarded by
// employee existence and retrieval ordered by date descending.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hrms/internal/attendance/models"
	"hrms/internal/platform/metrics"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/platform/sentinel"
)

// Store is the persistence the ledger requires. CreateAttendance checks the
// referenced employee and inserts within one transaction boundary, assigning
// a fresh id; both operations report an unknown employee as
// sentinel.ErrNotFound.
type Store interface {
	CreateAttendance(ctx context.Context, a *models.Attendance) error
	ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]*models.Attendance, error)
}

// Service orchestrates attendance operations.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs a Service.
func New(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record validates the status against the closed domain, then persists a new
// attendance record for the employee. Validation happens before any store
// interaction; an unknown employee fails with a not-found error and performs
// no write.
func (s *Service) Record(ctx context.Context, employeeID string, date time.Time, status string) (*models.Attendance, error) {
	parsed, err := models.ParseStatus(status)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid attendance status")
	}

	a := &models.Attendance{
		EmployeeID: employeeID,
		Date:       models.Day(date),
		Status:     parsed,
	}
	if err := s.store.CreateAttendance(ctx, a); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "employee with id "+employeeID+" not found")
		}
		if errors.Is(err, sentinel.ErrUnavailable) {
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "store unavailable")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record attendance")
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "attendance recorded",
			"employee_id", a.EmployeeID,
			"date", a.Date.Format(models.DateLayout),
			"status", string(a.Status),
		)
	}
	if s.metrics != nil {
		s.metrics.IncrementAttendanceRecorded(string(a.Status))
	}
	return a, nil
}

// ListForEmployee returns the employee's attendance ordered by date
// descending. An unknown employee fails with a not-found error, which is
// distinct from a known employee with zero records.
func (s *Service) ListForEmployee(ctx context.Context, employeeID string) ([]*models.Attendance, error) {
	records, err := s.store.ListAttendanceByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "employee with id "+employeeID+" not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list attendance")
	}
	return records, nil
}
