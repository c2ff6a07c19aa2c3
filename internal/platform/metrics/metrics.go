package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	EmployeesCreated   prometheus.Counter
	EmployeesDeleted   prometheus.Counter
	AttendanceRecorded *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		EmployeesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hrms_employees_created_total",
			Help: "Total number of employees created",
		}),
		EmployeesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hrms_employees_deleted_total",
			Help: "Total number of employees deleted (with cascaded attendance)",
		}),
		AttendanceRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_attendance_recorded_total",
			Help: "Total number of attendance records created, by status",
		}, []string{"status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrms_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// IncrementEmployeesCreated increments the employees created counter by 1.
func (m *Metrics) IncrementEmployeesCreated() {
	m.EmployeesCreated.Inc()
}

// IncrementEmployeesDeleted increments the employees deleted counter by 1.
func (m *Metrics) IncrementEmployeesDeleted() {
	m.EmployeesDeleted.Inc()
}

// IncrementAttendanceRecorded increments the attendance counter for a status.
func (m *Metrics) IncrementAttendanceRecorded(status string) {
	m.AttendanceRecorded.WithLabelValues(status).Inc()
}

// ObserveRequestDuration records one request's latency in seconds.
func (m *Metrics) ObserveRequestDuration(method, path string, seconds float64) {
	m.RequestDuration.WithLabelValues(method, path).Observe(seconds)
}
