package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	logpkg "github.com/kailas-cloud/campushub/internal/logger"
)

func loggedRouter(t *testing.T) (http.Handler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(zap.New(core)))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		logpkg.FromContext(r.Context()).Info("handler")
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/{kind}", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("[]")) })
		r.Get("/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) })
	})
	return r, logs
}

func requestLine(t *testing.T, logs *observer.ObservedLogs) observer.LoggedEntry {
	t.Helper()
	entries := logs.FilterMessage("http_request").TakeAll()
	if len(entries) != 1 {
		t.Fatalf("expected 1 http_request line, got %d", len(entries))
	}
	return entries[0]
}

func TestWideEvent_BrowseCarriesFilter(t *testing.T) {
	h, logs := loggedRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/members?q=ux&tag=Figma&tag=UI%2FUX", http.NoBody))

	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
	fields := requestLine(t, logs).ContextMap()
	want := map[string]any{
		"kind":     "members",
		"route":    "/{kind}",
		"q":        "ux",
		"tags":     []any{"Figma", "UI/UX"},
		"filtered": true,
		"status":   int64(200),
	}
	for k, v := range want {
		if diff := cmp.Diff(v, fields[k]); diff != "" {
			t.Errorf("field %s mismatch (-want +got):\n%s", k, diff)
		}
	}
}

func TestWideEvent_UnfilteredBrowse(t *testing.T) {
	h, logs := loggedRouter(t)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/funding", http.NoBody))

	fields := requestLine(t, logs).ContextMap()
	if fields["filtered"] != false || fields["kind"] != "funding" {
		t.Errorf("unexpected fields %v", fields)
	}
}

func TestWideEvent_RecordLookup(t *testing.T) {
	h, logs := loggedRouter(t)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/projects/42", http.NoBody))

	entry := requestLine(t, logs)
	if entry.Level != zapcore.WarnLevel {
		t.Errorf("level = %s, want warn for a 404", entry.Level)
	}
	fields := entry.ContextMap()
	if fields["kind"] != "projects" || fields["record_id"] != "42" {
		t.Errorf("unexpected fields %v", fields)
	}
	if _, ok := fields["filtered"]; ok {
		t.Error("lookups should not carry filter fields")
	}
}

func TestWideEvent_NonCatalogRoute(t *testing.T) {
	h, logs := loggedRouter(t)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", http.NoBody))

	inside := logs.FilterMessage("handler").TakeAll()
	if len(inside) != 1 || inside[0].ContextMap()["request_id"] == "" {
		t.Error("expected request-scoped logger in context")
	}
	fields := requestLine(t, logs).ContextMap()
	if _, ok := fields["kind"]; ok {
		t.Errorf("health should not carry a kind, got %v", fields["kind"])
	}
	if fields["route"] != "/health" {
		t.Errorf("route = %v", fields["route"])
	}
}

func TestWideEvent_UnknownKindNotLogged(t *testing.T) {
	h, logs := loggedRouter(t)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/grades", http.NoBody))

	if _, ok := requestLine(t, logs).ContextMap()["kind"]; ok {
		t.Error("unknown catalogs should not be logged as a kind")
	}
}

func TestLevelFor(t *testing.T) {
	tests := map[int]zapcore.Level{
		200: zapcore.InfoLevel,
		304: zapcore.InfoLevel,
		401: zapcore.WarnLevel,
		404: zapcore.WarnLevel,
		500: zapcore.ErrorLevel,
		503: zapcore.ErrorLevel,
	}
	for status, want := range tests {
		if got := levelFor(status); got != want {
			t.Errorf("levelFor(%d) = %s, want %s", status, got, want)
		}
	}
}
