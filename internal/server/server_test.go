package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-stats-service/internal/config"
	"github.com/preston-bernstein/nhl-stats-service/internal/domain/injuries"
	"github.com/preston-bernstein/nhl-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-service/internal/metrics"
	"github.com/preston-bernstein/nhl-stats-service/internal/providers"
	"github.com/preston-bernstein/nhl-stats-service/internal/testutil"
	"github.com/preston-bernstein/nhl-stats-service/internal/teststubs"
)

func fixtureConfig() config.Config {
	return config.Config{
		Port:     "0",
		Provider: "fixture",
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}, AllowCredentials: true},
	}
}

func TestServerServesFixtureRoutes(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(fixtureConfig(), logger)
	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}

	rr = testutil.Serve(router, http.MethodGet, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var list teams.ListResponse
	testutil.DecodeJSON(t, rr, &list)
	if len(list.Teams) != 4 {
		t.Fatalf("expected fixture teams, got %d", len(list.Teams))
	}

	rr = testutil.Serve(router, http.MethodGet, "/api/injuries/tor", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var report injuries.Report
	testutil.DecodeJSON(t, rr, &report)
	if report.Team != "TOR" || len(report.Injuries) != 2 {
		t.Fatalf("unexpected injuries %+v", report)
	}

	rr = testutil.Serve(router, http.MethodGet, "/api/game/2024020001", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var game map[string]json.RawMessage
	testutil.DecodeJSON(t, rr, &game)
	if _, ok := game["landing"]; !ok {
		t.Fatalf("expected landing attached from fixture, got keys %v", game)
	}
}

func TestServerReturnsDetailOnProviderFailure(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	stub := &teststubs.StubStatsProvider{Err: errors.New("upstream exploded")}
	srv := newServerWithProviders(fixtureConfig(), logger, stub, &teststubs.StubInjuryProvider{}, rec)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/api/schedule/TOR/20242025", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["detail"] != "upstream exploded" {
		t.Fatalf("unexpected detail %v", body)
	}
	if !strings.Contains(buf.String(), "upstream request failed") || !strings.Contains(buf.String(), "request_id=") {
		t.Fatalf("expected request-scoped error log, got %q", buf.String())
	}
	name := normalizeProviderName("", stub)
	if rec.ProviderErrors(name) != 1 {
		t.Fatalf("expected provider error recorded, got %d", rec.ProviderErrors(name))
	}
}

func TestServerAllowsCORSPreflight(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(fixtureConfig(), logger)

	req := httptest.NewRequest(http.MethodOptions, "/api/teams", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := testutil.ServeRequest(srv.Handler(), req)

	if rr.Code >= 300 {
		t.Fatalf("expected successful preflight, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://example.org" {
		t.Fatalf("expected origin echoed, got %q", got)
	}
}

func TestServerUnknownRouteIs404(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(fixtureConfig(), logger)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/api/unknown", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestNewConstructsServer(t *testing.T) {
	cfg := fixtureConfig()
	cfg.Provider = "nhle"
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil || srv.logger == nil {
		t.Fatalf("expected server with handler and default logger")
	}
	if srv.httpServer.Addr() != ":0" {
		t.Fatalf("unexpected addr %s", srv.httpServer.Addr())
	}
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{}
	metricsSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, metricsSrv)
	stopCalls := 0
	srv.metricsStop = func(context.Context) error {
		stopCalls++
		return nil
	}
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 || metricsSrv.ShutdownCalls != 1 || stopCalls != 1 {
		t.Fatalf("expected every component shut down once, got http=%d metrics=%d stop=%d", httpSrv.ShutdownCalls, metricsSrv.ShutdownCalls, stopCalls)
	}
}

func TestGracefulShutdownContinuesAfterMetricsErrors(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	httpSrv := &testutil.StubHTTPServer{ShutdownErr: errors.New("http down")}
	metricsSrv := &testutil.StubHTTPServer{ShutdownErr: errors.New("metrics down")}

	srv := newServerWithDeps(config.Config{}, logger, httpSrv, metricsSrv)
	srv.metricsStop = func(context.Context) error { return errors.New("flush failed") }
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected http server shutdown despite metrics errors")
	}
	for _, msg := range []string{"metrics shutdown failed", "metrics server shutdown failed", "graceful shutdown failed"} {
		if !strings.Contains(buf.String(), msg) {
			t.Fatalf("expected %q logged, got %q", msg, buf.String())
		}
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, blocking, nil)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, &testutil.ErrHTTPServer{}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := &testutil.CloseableHTTPServer{}
	metricsSrv := &testutil.CloseableHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv, metricsSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls != 1 || metricsSrv.ShutdownCalls != 1 {
		t.Fatalf("expected both servers shut down once, got http=%d metrics=%d", httpSrv.ShutdownCalls, metricsSrv.ShutdownCalls)
	}
}

func TestServerPassesLandingFailureThroughSilently(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	stub := &teststubs.StubStatsProvider{
		Box:  providers.Document{"id": "1"},
		Errs: map[string]error{"gamecenter/1/landing": errors.New("landing down")},
	}
	srv := newServerWithProviders(fixtureConfig(), logger, stub, nil, metrics.NewRecorder())

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/api/game/1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if strings.Contains(rr.Body.String(), "landing") {
		t.Fatalf("expected no landing key, got %s", rr.Body.String())
	}
	if strings.Contains(buf.String(), "level=ERROR") {
		t.Fatalf("expected no error log for landing failure, got %q", buf.String())
	}
}
