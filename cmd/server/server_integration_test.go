package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JoaoAlves313/streak/internal/config"
	"github.com/JoaoAlves313/streak/internal/dates"
	"github.com/JoaoAlves313/streak/internal/reward"
	"github.com/JoaoAlves313/streak/internal/serverapp"
)

type testApp struct {
	handler http.Handler
	clock   *dates.FakeClock
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.DataDir = t.TempDir()
	cfg.ApplyDefaults()

	clock := dates.NewFakeClock(time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local))
	handler, _, err := serverapp.NewHandler(context.Background(), serverapp.Options{
		Config: cfg,
		Clock:  clock,
		Logger: log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	return &testApp{handler: handler, clock: clock}
}

func (a *testApp) request(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) state(t *testing.T) reward.Snapshot {
	t.Helper()
	res := a.request(t, http.MethodGet, "/api/state")
	if res.Code != http.StatusOK {
		t.Fatalf("state expected 200, got %d body=%s", res.Code, res.Body.String())
	}
	var snap reward.Snapshot
	if err := json.Unmarshal(res.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return snap
}

func TestServer_HealthAndPages(t *testing.T) {
	app := newTestApp(t)

	if res := app.request(t, http.MethodGet, "/healthz"); res.Code != http.StatusOK {
		t.Fatalf("healthz expected 200, got %d", res.Code)
	}
	if res := app.request(t, http.MethodGet, "/readyz"); res.Code != http.StatusOK {
		t.Fatalf("readyz expected 200, got %d", res.Code)
	}

	home := app.request(t, http.MethodGet, "/")
	if home.Code != http.StatusOK {
		t.Fatalf("home expected 200, got %d", home.Code)
	}
	if !strings.Contains(home.Body.String(), "Pilares") {
		t.Fatalf("home page missing dashboard shell")
	}

	js := app.request(t, http.MethodGet, "/static/js/app.js")
	if js.Code != http.StatusOK {
		t.Fatalf("embedded static expected 200, got %d", js.Code)
	}
}

func TestServer_CompleteFlowMintsCoin(t *testing.T) {
	app := newTestApp(t)

	snap := app.state(t)
	if len(snap.Records) != 4 {
		t.Fatalf("expected 4 seeded categories, got %d", len(snap.Records))
	}

	completeAll := func() {
		for _, rec := range snap.Records {
			res := app.request(t, http.MethodPost, "/api/streaks/"+rec.ID+"/complete")
			if res.Code != http.StatusOK {
				t.Fatalf("complete %s expected 200, got %d body=%s", rec.ID, res.Code, res.Body.String())
			}
		}
	}

	completeAll()
	snap = app.state(t)
	if snap.Stats.MasterStreak != 1 {
		t.Fatalf("expected master streak 1, got %d", snap.Stats.MasterStreak)
	}
	if snap.Wallet.Coins != 0 {
		t.Fatalf("no coin on odd master streak, got %d", snap.Wallet.Coins)
	}

	// double-complete on the same day is a quiet no-op
	res := app.request(t, http.MethodPost, "/api/streaks/dev/complete")
	if res.Code != http.StatusOK {
		t.Fatalf("repeat complete expected 200, got %d", res.Code)
	}
	if got := app.state(t); got.Stats.MasterStreak != 1 || got.TotalStreak != 4 {
		t.Fatalf("same-day repeat changed state: %+v", got)
	}

	app.clock.AdvanceDays(1)
	completeAll()
	snap = app.state(t)
	if snap.Stats.MasterStreak != 2 {
		t.Fatalf("expected master streak 2, got %d", snap.Stats.MasterStreak)
	}
	if snap.Wallet.Coins != 1 {
		t.Fatalf("expected coin minted at master streak 2, got %d", snap.Wallet.Coins)
	}
	if !snap.CoinJustEarned {
		t.Fatalf("expected coinJustEarned flag on mint day")
	}
}

func TestServer_StoreAndTelemetry(t *testing.T) {
	app := newTestApp(t)

	// broke wallet rejects the freeze purchase
	res := app.request(t, http.MethodPost, "/api/store/freeze")
	if res.Code != http.StatusConflict {
		t.Fatalf("expected 409 for broke purchase, got %d body=%s", res.Code, res.Body.String())
	}

	if res := app.request(t, http.MethodPost, "/api/streaks/nope/complete"); res.Code != http.StatusNotFound {
		t.Fatalf("unknown id expected 404, got %d", res.Code)
	}

	if res := app.request(t, http.MethodPost, "/api/streaks/phys/complete"); res.Code != http.StatusOK {
		t.Fatalf("complete expected 200, got %d", res.Code)
	}
	if res := app.request(t, http.MethodPost, "/api/streaks/phys/reset"); res.Code != http.StatusOK {
		t.Fatalf("reset expected 200, got %d", res.Code)
	}

	statsRes := app.request(t, http.MethodGet, "/api/telemetry/stats")
	if statsRes.Code != http.StatusOK {
		t.Fatalf("telemetry stats expected 200, got %d", statsRes.Code)
	}
	var stats struct {
		CompletionsByCategory map[string]int `json:"completions_by_category"`
		ManualResets          int            `json:"manual_resets"`
	}
	if err := json.Unmarshal(statsRes.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.CompletionsByCategory["phys"] != 1 || stats.ManualResets != 1 {
		t.Fatalf("unexpected telemetry: %+v", stats)
	}
}

func TestServer_MotivationFallsBackWithoutKey(t *testing.T) {
	app := newTestApp(t)

	res := app.request(t, http.MethodGet, "/api/motivation?category=F%C3%ADsico&streak=3")
	if res.Code != http.StatusOK {
		t.Fatalf("motivation expected 200, got %d", res.Code)
	}
	var body struct {
		Message    string `json:"message"`
		Configured bool   `json:"configured"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode motivation: %v", err)
	}
	if body.Configured {
		t.Fatalf("test app must be unconfigured")
	}
	if body.Message == "" {
		t.Fatalf("fallback message missing")
	}

	if res := app.request(t, http.MethodGet, "/api/motivation"); res.Code != http.StatusBadRequest {
		t.Fatalf("missing category expected 400, got %d", res.Code)
	}
}
