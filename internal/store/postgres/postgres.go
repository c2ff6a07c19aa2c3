// Package postgres persists employees and attendance in PostgreSQL through
// database/sql. Each logical operation runs inside one transaction boundary;
// uniqueness and referential races lost at insert time are normalized to the
// same sentinel errors the pre-checks report.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	attendanceModel "hrms/internal/attendance/models"
	dashboardModel "hrms/internal/dashboard/models"
	employeeModel "hrms/internal/employee/models"
	"hrms/pkg/platform/sentinel"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Store is a PostgreSQL-backed store for the employee and attendance tables.
type Store struct {
	db *sql.DB
}

// New constructs a PostgreSQL-backed store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isPqCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

// CreateEmployeeIfIDAvailable inserts the employee. The primary key makes
// the existence check and the insert one atomic unit: a lost race surfaces
// as a unique violation and is reported as sentinel.ErrConflict, the same
// condition a pre-existing row produces.
func (s *Store) CreateEmployeeIfIDAvailable(ctx context.Context, e *employeeModel.Employee) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (employee_id, name, email, department)
		VALUES ($1, $2, $3, $4)
	`, e.EmployeeID, e.Name, e.Email, e.Department)
	if err != nil {
		if isPqCode(err, codeUniqueViolation) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// ListEmployees returns every employee ordered by employee_id.
func (s *Store) ListEmployees(ctx context.Context) ([]*employeeModel.Employee, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT employee_id, name, email, department
		FROM employees
		ORDER BY employee_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []*employeeModel.Employee
	for rows.Next() {
		var e employeeModel.Employee
		if err := rows.Scan(&e.EmployeeID, &e.Name, &e.Email, &e.Department); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return out, nil
}

// DeleteEmployeeCascade removes the employee's attendance and the employee
// itself inside one transaction, so no reader observes a half-deleted state.
// The FK's ON DELETE CASCADE remains as a store-level safety net; the
// explicit child delete keeps the cascade visible in the operation itself.
func (s *Store) DeleteEmployeeCascade(ctx context.Context, employeeID string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin delete employee: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM attendance WHERE employee_id = $1`, employeeID); err != nil {
		return false, fmt.Errorf("delete attendance for employee: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete employee rows affected: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete employee: %w", err)
	}
	return affected > 0, nil
}

// CreateAttendance verifies the employee exists and inserts the record in
// one transaction, assigning a fresh id from the attendance sequence. A
// foreign-key violation from a concurrent employee delete is reported as
// sentinel.ErrNotFound, the same condition the existence check produces.
func (s *Store) CreateAttendance(ctx context.Context, a *attendanceModel.Attendance) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create attendance: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE employee_id = $1)`, a.EmployeeID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check employee exists: %w", err)
	}
	if !exists {
		return sentinel.ErrNotFound
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, a.EmployeeID, attendanceModel.Day(a.Date), string(a.Status)).Scan(&a.ID)
	if err != nil {
		if isPqCode(err, codeForeignKeyViolation) {
			return sentinel.ErrNotFound
		}
		return fmt.Errorf("create attendance: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create attendance: %w", err)
	}
	a.Date = attendanceModel.Day(a.Date)
	return nil
}

// ListAttendanceByEmployee returns the employee's attendance ordered by date
// descending. The existence check and the read run at REPEATABLE READ so both
// statements share one snapshot; a concurrent cascade delete is observed
// either in full or not at all. An unknown employee yields
// sentinel.ErrNotFound rather than an empty list.
func (s *Store) ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]*attendanceModel.Attendance, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin list attendance: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE employee_id = $1)`, employeeID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check employee exists: %w", err)
	}
	if !exists {
		return nil, sentinel.ErrNotFound
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT id, employee_id, date, status
		FROM attendance
		WHERE employee_id = $1
		ORDER BY date DESC, id
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var out []*attendanceModel.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit list attendance: %w", err)
	}
	return out, nil
}

func scanAttendance(rows *sql.Rows) (*attendanceModel.Attendance, error) {
	var (
		a      attendanceModel.Attendance
		status string
	)
	if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &status); err != nil {
		return nil, fmt.Errorf("scan attendance: %w", err)
	}
	a.Date = attendanceModel.Day(a.Date)
	a.Status = attendanceModel.Status(status)
	return &a, nil
}

// CountEmployees returns the employee cardinality.
func (s *Store) CountEmployees(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

// CountAttendance returns the attendance cardinality.
func (s *Store) CountAttendance(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM attendance`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count attendance: %w", err)
	}
	return n, nil
}

// StatusCountsOn partitions the given calendar date's attendance by status.
func (s *Store) StatusCountsOn(ctx context.Context, day time.Time) (present, absent int, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3)
		FROM attendance
		WHERE date = $1
	`, attendanceModel.Day(day),
		string(attendanceModel.StatusPresent),
		string(attendanceModel.StatusAbsent),
	).Scan(&present, &absent)
	if err != nil {
		return 0, 0, fmt.Errorf("count attendance by status: %w", err)
	}
	return present, absent, nil
}

// DepartmentDistribution counts employees grouped by department.
func (s *Store) DepartmentDistribution(ctx context.Context) ([]*dashboardModel.DepartmentCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT department, COUNT(*)
		FROM employees
		GROUP BY department
		ORDER BY department
	`)
	if err != nil {
		return nil, fmt.Errorf("department distribution: %w", err)
	}
	defer rows.Close()

	var out []*dashboardModel.DepartmentCount
	for rows.Next() {
		var dc dashboardModel.DepartmentCount
		if err := rows.Scan(&dc.Name, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan department count: %w", err)
		}
		out = append(out, &dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("department distribution: %w", err)
	}
	return out, nil
}

// RecentAttendance returns the limit most recent attendance rows by date
// descending, joined with the owning employee's name.
func (s *Store) RecentAttendance(ctx context.Context, limit int) ([]*dashboardModel.RecentEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.employee_id, e.name, a.date, a.status
		FROM attendance a
		JOIN employees e ON e.employee_id = a.employee_id
		ORDER BY a.date DESC, a.id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent attendance: %w", err)
	}
	defer rows.Close()

	var out []*dashboardModel.RecentEntry
	for rows.Next() {
		var (
			entry dashboardModel.RecentEntry
			date  time.Time
		)
		if err := rows.Scan(&entry.EmployeeID, &entry.EmployeeName, &date, &entry.Status); err != nil {
			return nil, fmt.Errorf("scan recent attendance: %w", err)
		}
		entry.Date = attendanceModel.Day(date).Format(attendanceModel.DateLayout)
		out = append(out, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent attendance: %w", err)
	}
	return out, nil
}

// Ping reports store health.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
	}
	return nil
}
