// Package service implements the employee registry: creation with
// uniqueness enforcement, listing, and deletion with cascading removal of
// attendance records.
package service

import (
	"context"
	"errors"
	"log/slog"

	"hrms/internal/employee/models"
	"hrms/internal/platform/metrics"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/platform/sentinel"
)

// Store is the persistence the registry requires. Implementations guarantee
// that CreateEmployeeIfIDAvailable is atomic with respect to concurrent
// creators of the same employee_id, and that DeleteEmployeeCascade removes
// the employee and its attendance as one unit.
type Store interface {
	CreateEmployeeIfIDAvailable(ctx context.Context, e *models.Employee) error
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
	DeleteEmployeeCascade(ctx context.Context, employeeID string) (bool, error)
}

// Service orchestrates employee operations.
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

// Create validates the fields, then inserts the employee. A conflicting
// employee_id fails with a conflict error and performs no write; a
// uniqueness violation surfaced by the store itself (lost race) is reported
// as the same condition.
func (s *Service) Create(ctx context.Context, employeeID, name, email, department string) (*models.Employee, error) {
	e, err := models.New(employeeID, name, email, department)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid employee")
	}

	if err := s.store.CreateEmployeeIfIDAvailable(ctx, e); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "employee with id "+employeeID+" already exists")
		}
		if errors.Is(err, sentinel.ErrUnavailable) {
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "store unavailable")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create employee")
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "employee created",
			"employee_id", e.EmployeeID,
			"department", e.Department,
		)
	}
	if s.metrics != nil {
		s.metrics.IncrementEmployeesCreated()
	}
	return e, nil
}

// List returns every employee. Order is stable for a given store state.
func (s *Service) List(ctx context.Context) ([]*models.Employee, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list employees")
	}
	return employees, nil
}

// Delete removes the employee and every attendance record referencing it in
// one atomic operation. A missing employee returns false, not an error.
func (s *Service) Delete(ctx context.Context, employeeID string) (bool, error) {
	deleted, err := s.store.DeleteEmployeeCascade(ctx, employeeID)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete employee")
	}
	if deleted {
		if s.logger != nil {
			s.logger.InfoContext(ctx, "employee deleted", "employee_id", employeeID)
		}
		if s.metrics != nil {
			s.metrics.IncrementEmployeesDeleted()
		}
	}
	return deleted, nil
}
