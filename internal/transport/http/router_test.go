package httptransport_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"hrms/internal/store/memory"
	httptransport "hrms/internal/transport/http"
	"hrms/pkg/testutil"
)

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func newTestRouter(store httptransport.Pinger) http.Handler {
	return httptransport.NewRouter(httptransport.Options{
		Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		Store:  store,
	})
}

func TestHealthOK(t *testing.T) {
	router := newTestRouter(memory.New())

	for _, path := range []string{"/", "/healthz"} {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, path))
		testutil.AssertStatus(t, rr, http.StatusOK)
		body := testutil.UnmarshalResponse[map[string]string](t, rr)
		if (*body)["status"] != "ok" {
			t.Fatalf("expected status ok on %s, got %q", path, (*body)["status"])
		}
	}
}

func TestHealthDegraded(t *testing.T) {
	router := newTestRouter(failingPinger{})

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	body := testutil.UnmarshalResponse[map[string]string](t, rr)
	if (*body)["status"] != "degraded" {
		t.Fatalf("expected status degraded, got %q", (*body)["status"])
	}
}

func TestMetricsExposed(t *testing.T) {
	router := newTestRouter(memory.New())

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRequestIDPropagated(t *testing.T) {
	router := newTestRouter(memory.New())

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header")
	}
}
