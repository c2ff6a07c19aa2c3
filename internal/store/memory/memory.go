// Package memory provides an in-memory store implementing every store
// interface the services consume. A single lock spans both entity sets so
// the cascade delete is atomic with respect to concurrent readers, matching
// the transactional guarantees of the Postgres store. Tests construct one
// isolated instance per run.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	attendanceModel "hrms/internal/attendance/models"
	dashboardModel "hrms/internal/dashboard/models"
	employeeModel "hrms/internal/employee/models"
	"hrms/pkg/platform/sentinel"
)

// Store holds employees keyed by employee_id and attendance rows in
// insertion order. nextID mimics an auto-increment column: ids are assigned
// once and never reused, even after a cascade removes rows.
type Store struct {
	mu         sync.RWMutex
	employees  map[string]employeeModel.Employee
	attendance []attendanceModel.Attendance
	nextID     int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		employees: make(map[string]employeeModel.Employee),
		nextID:    1,
	}
}

// CreateEmployeeIfIDAvailable inserts e unless the id is taken. The check
// and the insert happen under one lock hold, so two racing creators of the
// same id cannot both succeed.
func (s *Store) CreateEmployeeIfIDAvailable(_ context.Context, e *employeeModel.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.employees[e.EmployeeID]; exists {
		return sentinel.ErrConflict
	}
	s.employees[e.EmployeeID] = *e
	return nil
}

// ListEmployees returns every employee ordered by employee_id. The order is
// stable for a given store state.
func (s *Store) ListEmployees(_ context.Context) ([]*employeeModel.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*employeeModel.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

// DeleteEmployeeCascade removes the employee and every attendance row that
// references it in one lock hold. Returns false when the employee does not
// exist.
func (s *Store) DeleteEmployeeCascade(_ context.Context, employeeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.employees[employeeID]; !exists {
		return false, nil
	}
	delete(s.employees, employeeID)
	kept := s.attendance[:0]
	for _, a := range s.attendance {
		if a.EmployeeID != employeeID {
			kept = append(kept, a)
		}
	}
	s.attendance = kept
	return true, nil
}

// CreateAttendance verifies the referenced employee exists, assigns a fresh
// id and persists the record. Existence check and insert share one lock
// hold, so a concurrent cascade delete cannot leave an orphaned row.
func (s *Store) CreateAttendance(_ context.Context, a *attendanceModel.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.employees[a.EmployeeID]; !exists {
		return sentinel.ErrNotFound
	}
	a.ID = s.nextID
	s.nextID++
	a.Date = attendanceModel.Day(a.Date)
	s.attendance = append(s.attendance, *a)
	return nil
}

// ListAttendanceByEmployee returns the employee's attendance ordered by date
// descending. An unknown employee yields sentinel.ErrNotFound, distinct from
// an employee with zero records.
func (s *Store) ListAttendanceByEmployee(_ context.Context, employeeID string) ([]*attendanceModel.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, exists := s.employees[employeeID]; !exists {
		return nil, sentinel.ErrNotFound
	}
	var out []*attendanceModel.Attendance
	for _, a := range s.attendance {
		if a.EmployeeID == employeeID {
			a := a
			out = append(out, &a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// CountEmployees returns the employee cardinality.
func (s *Store) CountEmployees(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees), nil
}

// CountAttendance returns the attendance cardinality.
func (s *Store) CountAttendance(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.attendance), nil
}

// StatusCountsOn partitions the given calendar date's attendance by status.
func (s *Store) StatusCountsOn(_ context.Context, day time.Time) (present, absent int, err error) {
	day = attendanceModel.Day(day)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.attendance {
		if !a.Date.Equal(day) {
			continue
		}
		switch a.Status {
		case attendanceModel.StatusPresent:
			present++
		case attendanceModel.StatusAbsent:
			absent++
		}
	}
	return present, absent, nil
}

// DepartmentDistribution counts employees grouped by department, one entry
// per distinct department value present, ordered by department name.
func (s *Store) DepartmentDistribution(_ context.Context) ([]*dashboardModel.DepartmentCount, error) {
	s.mu.RLock()
	counts := make(map[string]int)
	for _, e := range s.employees {
		counts[e.Department]++
	}
	s.mu.RUnlock()

	out := make([]*dashboardModel.DepartmentCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, &dashboardModel.DepartmentCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// RecentAttendance returns the limit most recent attendance rows by date
// descending, each joined with its employee's current name.
func (s *Store) RecentAttendance(_ context.Context, limit int) ([]*dashboardModel.RecentEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]attendanceModel.Attendance, len(s.attendance))
	copy(rows, s.attendance)
	// Newest date first; later-inserted rows first within a date.
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return rows[i].ID > rows[j].ID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]*dashboardModel.RecentEntry, 0, len(rows))
	for _, a := range rows {
		out = append(out, &dashboardModel.RecentEntry{
			EmployeeID:   a.EmployeeID,
			EmployeeName: s.employees[a.EmployeeID].Name,
			Date:         a.Date.Format(attendanceModel.DateLayout),
			Status:       a.Status,
		})
	}
	return out, nil
}

// Ping reports store health; the in-memory store is always reachable.
func (s *Store) Ping(context.Context) error { return nil }
