package handler_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	attmodels "hrms/internal/attendance/models"
	"hrms/internal/dashboard/handler"
	"hrms/internal/dashboard/models"
	"hrms/internal/dashboard/service"
	empmodels "hrms/internal/employee/models"
	"hrms/internal/store/memory"
	"hrms/pkg/testutil"
)

var today = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newRouter(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()
	store := memory.New()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := service.New(store,
		service.WithLogger(logger),
		service.WithClock(func() time.Time { return today }),
	)
	h := handler.New(svc, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r, store
}

func TestStatsEmpty(t *testing.T) {
	router, _ := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/dashboard/stats"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	stats := testutil.UnmarshalResponse[models.Stats](t, rr)
	require.Equal(t, 0, stats.TotalEmployees)
	require.Equal(t, 0, stats.TotalAttendance)
	require.NotNil(t, stats.Departments)
	require.NotNil(t, stats.RecentAttendance)
	require.Empty(t, stats.Departments)
	require.Empty(t, stats.RecentAttendance)
}

func TestStatsSnapshot(t *testing.T) {
	router, store := newRouter(t)
	ctx := context.Background()

	for _, e := range []struct{ id, dept string }{
		{"E1", "Eng"}, {"E2", "Eng"}, {"E3", "Sales"},
	} {
		emp, err := empmodels.New(e.id, "Name "+e.id, e.id+"@co.com", e.dept)
		require.NoError(t, err)
		require.NoError(t, store.CreateEmployeeIfIDAvailable(ctx, emp))
	}
	for _, rec := range []struct {
		id     string
		date   time.Time
		status attmodels.Status
	}{
		{"E1", today, attmodels.StatusPresent},
		{"E2", today, attmodels.StatusAbsent},
		{"E3", today.AddDate(0, 0, -1), attmodels.StatusPresent},
	} {
		record := &attmodels.Attendance{EmployeeID: rec.id, Date: rec.date, Status: rec.status}
		require.NoError(t, store.CreateAttendance(ctx, record))
	}

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/dashboard/stats"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	stats := testutil.UnmarshalResponse[models.Stats](t, rr)
	require.Equal(t, 3, stats.TotalEmployees)
	require.Equal(t, 3, stats.TotalAttendance)
	require.Equal(t, 1, stats.PresentToday)
	require.Equal(t, 1, stats.AbsentToday)
	require.Equal(t, []models.DepartmentCount{{Name: "Eng", Count: 2}, {Name: "Sales", Count: 1}}, stats.Departments)
	require.Len(t, stats.RecentAttendance, 3)
	require.Equal(t, "2024-03-15", stats.RecentAttendance[0].Date)
	require.Equal(t, "2024-03-14", stats.RecentAttendance[2].Date)
}
