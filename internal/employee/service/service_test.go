package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"hrms/internal/employee/models"
	"hrms/internal/employee/service"
	"hrms/internal/store/memory"
	dErrors "hrms/pkg/domain-errors"
)

type EmployeeServiceSuite struct {
	suite.Suite
	store *memory.Store
	svc   *service.Service
	ctx   context.Context
}

func (s *EmployeeServiceSuite) SetupTest() {
	s.store = memory.New()
	s.svc = service.New(s.store)
	s.ctx = context.Background()
}

func TestEmployeeServiceSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceSuite))
}

// TestCreateRoundTrip verifies a created employee is echoed back by List
// with its fields byte-identical, no silent normalization.
func (s *EmployeeServiceSuite) TestCreateRoundTrip() {
	created, err := s.svc.Create(s.ctx, "E1", "Ann", "ann@co.com", "Eng")
	s.Require().NoError(err)
	s.Equal("E1", created.EmployeeID)

	employees, err := s.svc.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(employees, 1)
	s.Equal(*created, *employees[0])
}

// TestCreateValidation verifies validation errors never touch the store and
// stay distinguishable by their cause.
func (s *EmployeeServiceSuite) TestCreateValidation() {
	s.Run("missing field", func() {
		_, err := s.svc.Create(s.ctx, "E1", "", "ann@co.com", "Eng")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.ErrorIs(err, models.ErrRequiredField)
	})

	s.Run("invalid email", func() {
		_, err := s.svc.Create(s.ctx, "E1", "Ann", "not-an-email", "Eng")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.ErrorIs(err, models.ErrInvalidEmail)
	})

	s.Run("store untouched", func() {
		employees, err := s.svc.List(s.ctx)
		s.Require().NoError(err)
		s.Empty(employees)
	})
}

// TestCreateDuplicate verifies the second creation of an id conflicts and
// the first record's fields win.
func (s *EmployeeServiceSuite) TestCreateDuplicate() {
	_, err := s.svc.Create(s.ctx, "E1", "Ann", "ann@co.com", "Eng")
	s.Require().NoError(err)

	_, err = s.svc.Create(s.ctx, "E1", "Bob", "bob@co.com", "Sales")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	employees, err := s.svc.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(employees, 1)
	s.Equal("Ann", employees[0].Name)
}

// TestDelete verifies deletion semantics: true for an existing employee,
// false (not an error) for a missing one.
func (s *EmployeeServiceSuite) TestDelete() {
	_, err := s.svc.Create(s.ctx, "E1", "Ann", "ann@co.com", "Eng")
	s.Require().NoError(err)

	deleted, err := s.svc.Delete(s.ctx, "E1")
	s.Require().NoError(err)
	s.True(deleted)

	deleted, err = s.svc.Delete(s.ctx, "E1")
	s.Require().NoError(err)
	s.False(deleted)
}
