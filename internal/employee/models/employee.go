package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Employee is the aggregate root for an employee record.
//
// Invariants:
//   - EmployeeID is non-empty and immutable after construction
//   - Name, Email and Department are non-empty
//   - Email matches the local-part@domain.tld shape below
//
// An employee owns its attendance records: deleting the employee removes
// every attendance row that references it, atomically.
type Employee struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Invariant violations surfaced by New. Services wrap these into coded
// validation errors; callers can still distinguish the conditions with
// errors.Is.
var (
	ErrRequiredField = errors.New("required field missing")
	ErrInvalidEmail  = errors.New("invalid email format")
)

// emailPattern anchors the whole string: one or more local-part characters,
// an @, one or more domain characters, and a final alphabetic segment of at
// least two characters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// New constructs an Employee, enforcing field invariants. Values are stored
// exactly as given: nothing is trimmed or case-folded.
func New(employeeID, name, email, department string) (*Employee, error) {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"employee_id", employeeID},
		{"name", name},
		{"email", email},
		{"department", department},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: %s", ErrRequiredField, f.name)
		}
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return &Employee{
		EmployeeID: employeeID,
		Name:       name,
		Email:      email,
		Department: department,
	}, nil
}
