package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Status is the closed attendance status domain. Only the two declared
// constants are valid; construction goes through ParseStatus so internal
// logic never re-checks the domain.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// ErrInvalidStatus is returned by ParseStatus for any string outside the
// closed status domain.
var ErrInvalidStatus = errors.New("invalid status value")

// ParseStatus validates s against the closed status domain. The comparison
// is byte-for-byte: case variants, padded variants and synonyms are all
// rejected.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPresent, StatusAbsent:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// DateLayout is the wire format for attendance dates. Attendance carries a
// calendar date only; any time-of-day component is discarded at the boundary.
const DateLayout = "2006-01-02"

// Attendance is a dated Present/Absent record belonging to exactly one
// employee. ID is assigned by the store at creation and never reused.
// Multiple records may exist for the same (employee_id, date) pair; the
// system intentionally does not deduplicate per day.
type Attendance struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       time.Time `json:"-"`
	Status     Status    `json:"status"`
}

// MarshalJSON emits Date as YYYY-MM-DD, matching the wire contract.
func (a Attendance) MarshalJSON() ([]byte, error) {
	type alias Attendance
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias: alias(a), Date: a.Date.Format(DateLayout)})
}

// Day truncates t to its calendar date in UTC. Stores normalize dates with
// this so equality checks ("today's attendance") compare dates, not instants.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD wire date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s", s, DateLayout)
	}
	return t, nil
}
