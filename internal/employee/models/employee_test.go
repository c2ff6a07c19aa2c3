package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidEmployee(t *testing.T) {
	e, err := New("E1", "Ann", "ann@co.com", "Eng")
	require.NoError(t, err)
	assert.Equal(t, "E1", e.EmployeeID)
	assert.Equal(t, "Ann", e.Name)
	assert.Equal(t, "ann@co.com", e.Email)
	assert.Equal(t, "Eng", e.Department)
}

func TestNewPreservesFieldsVerbatim(t *testing.T) {
	// No trimming or case folding happens on accepted values.
	e, err := New("  E1  ", "  Ann  ", "Ann.Smith+hr@Co.COM", "  Eng  ")
	require.NoError(t, err)
	assert.Equal(t, "  E1  ", e.EmployeeID)
	assert.Equal(t, "  Ann  ", e.Name)
	assert.Equal(t, "Ann.Smith+hr@Co.COM", e.Email)
	assert.Equal(t, "  Eng  ", e.Department)
}

func TestNewRequiredFields(t *testing.T) {
	tests := []struct {
		name       string
		employeeID string
		empName    string
		email      string
		department string
	}{
		{"empty employee_id", "", "Ann", "ann@co.com", "Eng"},
		{"whitespace employee_id", "   ", "Ann", "ann@co.com", "Eng"},
		{"empty name", "E1", "", "ann@co.com", "Eng"},
		{"whitespace name", "E1", "\t\n", "ann@co.com", "Eng"},
		{"empty email", "E1", "Ann", "", "Eng"},
		{"empty department", "E1", "Ann", "ann@co.com", ""},
		{"whitespace department", "E1", "Ann", "ann@co.com", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.employeeID, tt.empName, tt.email, tt.department)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRequiredField)
		})
	}
}

func TestNewEmailFormat(t *testing.T) {
	valid := []string{
		"ann@co.com",
		"a.b_c%d+e-f@sub.domain.org",
		"1@2.io",
		"ANN@CO.COM",
	}
	for _, email := range valid {
		t.Run("valid "+email, func(t *testing.T) {
			_, err := New("E1", "Ann", email, "Eng")
			require.NoError(t, err)
		})
	}

	invalid := []string{
		"ann",
		"ann@co",
		"ann@co.c",
		"@co.com",
		"ann@.com",
		"ann@co.1a",
		"ann co@co.com",
		"ann@co.com ",
	}
	for _, email := range invalid {
		t.Run("invalid "+email, func(t *testing.T) {
			_, err := New("E1", "Ann", email, "Eng")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEmail)
		})
	}
}
