package handler_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"hrms/internal/attendance/handler"
	"hrms/internal/attendance/service"
	empmodels "hrms/internal/employee/models"
	"hrms/internal/store/memory"
	"hrms/pkg/testutil"
)

func newRouter(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()
	store := memory.New()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := handler.New(service.New(store, service.WithLogger(logger)), logger)
	r := chi.NewRouter()
	h.Register(r)
	return r, store
}

func seedEmployee(t *testing.T, store *memory.Store, id string) {
	t.Helper()
	emp, err := empmodels.New(id, "Ann", "ann@co.com", "Eng")
	require.NoError(t, err)
	require.NoError(t, store.CreateEmployeeIfIDAvailable(context.Background(), emp))
}

func recordPayload(id, date, status string) map[string]string {
	return map[string]string{"employee_id": id, "date": date, "status": status}
}

func TestRecordAttendance(t *testing.T) {
	router, store := newRouter(t)
	seedEmployee(t, store, "E1")

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/attendance",
		recordPayload("E1", "2024-03-01", "Present")))

	testutil.AssertStatus(t, rr, http.StatusCreated)
	body := testutil.UnmarshalResponse[map[string]any](t, rr)
	require.Equal(t, "E1", (*body)["employee_id"])
	require.Equal(t, "2024-03-01", (*body)["date"])
	require.Equal(t, "Present", (*body)["status"])
}

func TestRecordAttendanceUnknownEmployee(t *testing.T) {
	router, _ := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/attendance",
		recordPayload("ghost", "2024-03-01", "Present")))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}

func TestRecordAttendanceInvalidStatus(t *testing.T) {
	router, store := newRouter(t)
	seedEmployee(t, store, "E1")

	for _, status := range []string{"present", "Here", ""} {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/attendance",
			recordPayload("E1", "2024-03-01", status)))
		testutil.AssertStatusAndError(t, rr, http.StatusUnprocessableEntity, "validation_error")
	}
}

func TestRecordAttendanceBadDate(t *testing.T) {
	router, store := newRouter(t)
	seedEmployee(t, store, "E1")

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/attendance",
		recordPayload("E1", "01-03-2024", "Present")))
	testutil.AssertStatusAndError(t, rr, http.StatusUnprocessableEntity, "validation_error")
}

func TestRecordAttendanceMalformedBody(t *testing.T) {
	router, _ := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/attendance", "{not json"))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
}

func TestListAttendance(t *testing.T) {
	router, store := newRouter(t)
	seedEmployee(t, store, "E1")

	for _, date := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/attendance",
			recordPayload("E1", date, "Present")))
		testutil.AssertStatus(t, rr, http.StatusCreated)
	}

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/attendance/E1"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	records := testutil.UnmarshalResponse[[]map[string]any](t, rr)
	require.Len(t, *records, 3)
	require.Equal(t, "2024-03-01", (*records)[0]["date"])
	require.Equal(t, "2024-02-01", (*records)[1]["date"])
	require.Equal(t, "2024-01-01", (*records)[2]["date"])
}

func TestListAttendanceUnknownEmployee(t *testing.T) {
	router, _ := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/attendance/ghost"))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}
