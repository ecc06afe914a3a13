package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/api"
	"github.com/zapponejosh/lunar-calendar-api/internal/config"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
	"github.com/zapponejosh/lunar-calendar-api/internal/logger"
)

const testAPIKey = "smoke-key-0123456789"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.Discard()
	db, err := database.Open(database.Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}, log)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	cfg := &config.Config{
		Env:          config.EnvProduction,
		APIKey:       testAPIKey,
		MaxRangeDays: 31,
		DefaultLang:  "zh-Hant",
	}
	srv := httptest.NewServer(api.SetupRoutes(api.NewHandlers(db, cfg, log), cfg, log))
	t.Cleanup(srv.Close)
	return srv
}

func TestTestRunner_AllPass(t *testing.T) {
	srv := newServer(t)

	var out bytes.Buffer
	runner := NewTestRunner(&out, srv.URL+"/", testAPIKey)
	if failed := runner.Run(); failed != 0 {
		t.Fatalf("Run() failed = %d\n%s", failed, out.String())
	}
	if runner.successCount == 0 {
		t.Error("no checks recorded")
	}
	if !strings.Contains(out.String(), "Deleted birthday") {
		t.Errorf("birthday checks did not run:\n%s", out.String())
	}
}

func TestTestRunner_SkipsBirthdaysWithoutKey(t *testing.T) {
	srv := newServer(t)

	var out bytes.Buffer
	if failed := NewTestRunner(&out, srv.URL, "").Run(); failed != 0 {
		t.Fatalf("Run() failed = %d\n%s", failed, out.String())
	}
	if strings.Contains(out.String(), "--- Birthdays ---") {
		t.Error("birthday checks ran without an API key")
	}
}

func TestTestRunner_ReportsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":{"message":"boom","code":"INTERNAL_ERROR"}}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	runner := NewTestRunner(&out, srv.URL, "")
	if failed := runner.Run(); failed == 0 {
		t.Fatal("Run() reported no failures against a broken server")
	}
	if !strings.Contains(out.String(), "Failures:") || !strings.Contains(out.String(), "boom") {
		t.Errorf("summary missing failures:\n%s", out.String())
	}
}
