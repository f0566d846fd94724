// Package serverapp wires storage, the reward engine and the HTTP surface
// into one handler. Building the handler also runs the once-per-load
// reconciliation pass, so state on disk is consistent before the first
// request is served.
package serverapp

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/JoaoAlves313/streak/internal/config"
	"github.com/JoaoAlves313/streak/internal/dates"
	"github.com/JoaoAlves313/streak/internal/httpmw"
	"github.com/JoaoAlves313/streak/internal/motivation"
	"github.com/JoaoAlves313/streak/internal/reward"
	"github.com/JoaoAlves313/streak/internal/streak"
	"github.com/JoaoAlves313/streak/internal/telemetry"
	"github.com/JoaoAlves313/streak/internal/wallet"
	staticfiles "github.com/JoaoAlves313/streak/static"
	"github.com/JoaoAlves313/streak/ui/page"
)

type Options struct {
	Config *config.Config
	Clock  dates.Clock
	// APIKey for the motivational-text collaborator; empty means fallbacks only.
	APIKey string
	Logger *log.Logger
}

type App struct {
	Engine  reward.Engine
	Streaks *streak.FileRepo
	Wallet  *wallet.FileRepo
	Stats   *reward.FileRepo
	Events  *telemetry.MemoryRepository
}

func NewHandler(ctx context.Context, opts Options) (http.Handler, *App, error) {
	if opts.Config == nil {
		return nil, nil, errors.New("config is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Clock == nil {
		opts.Clock = dates.RealClock{}
	}
	dataDir := strings.TrimSpace(opts.Config.Server.DataDir)
	if dataDir == "" {
		dataDir = "data"
	}

	streakRepo, err := streak.NewFileRepo(dataDir, opts.Logger)
	if err != nil {
		return nil, nil, err
	}
	walletRepo, err := wallet.NewFileRepo(dataDir, opts.Logger)
	if err != nil {
		return nil, nil, err
	}
	statsRepo, err := reward.NewFileRepo(dataDir, opts.Logger)
	if err != nil {
		return nil, nil, err
	}
	events := telemetry.NewMemoryRepository()

	engine := reward.Engine{
		Streaks: streakRepo,
		Wallet:  walletRepo,
		Stats:   statsRepo,
		Clock:   opts.Clock,
		Balance: opts.Config.Balance,
		Events:  events,
		Logger:  opts.Logger,
	}

	rec, err := engine.ReconcileOnLoad()
	if err != nil {
		return nil, nil, err
	}
	if len(rec.ResetIDs) > 0 || rec.MasterReset {
		opts.Logger.Printf("reconcile on load: day=%s resets=%v master_reset=%v freeze=%v",
			rec.Day, rec.ResetIDs, rec.MasterReset, rec.FreezeActive)
	}

	tips := motivation.NewService(ctx, opts.APIKey, opts.Config.Motivation.Model,
		time.Duration(opts.Config.Motivation.TimeoutSeconds)*time.Second, opts.Logger)

	mux := http.NewServeMux()

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticfiles.EmbeddedFS()))))
	mux.Handle("GET /{$}", templ.Handler(page.HomePage()))

	rewardHandler := reward.NewHandler(engine)
	mux.HandleFunc("GET /api/state", rewardHandler.State)
	mux.HandleFunc("POST /api/streaks/{id}/complete", rewardHandler.Complete)
	mux.HandleFunc("POST /api/streaks/{id}/reset", rewardHandler.Reset)
	mux.HandleFunc("POST /api/store/freeze", rewardHandler.PurchaseFreeze)

	tipHandler := motivation.NewHandler(tips)
	mux.HandleFunc("GET /api/motivation", tipHandler.Tip)

	telemetryHandler := telemetry.NewHandler(events)
	mux.HandleFunc("GET /api/telemetry/events", telemetryHandler.Events)
	mux.HandleFunc("GET /api/telemetry/stats", telemetryHandler.Stats)

	mux.HandleFunc("GET /api/config", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, opts.Config)
	})

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "streak",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if len(streakRepo.List()) == 0 {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "streak storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "streak",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	app := &App{
		Engine:  engine,
		Streaks: streakRepo,
		Wallet:  walletRepo,
		Stats:   statsRepo,
		Events:  events,
	}

	handler := httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
		httpmw.WithAccessLog(opts.Logger),
	)
	return handler, app, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// APIKeyFromEnv resolves the collaborator key the same way the original
// client did: GEMINI_API_KEY first, API_KEY as the legacy name.
func APIKeyFromEnv() string {
	if k := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); k != "" {
		return k
	}
	return strings.TrimSpace(os.Getenv("API_KEY"))
}
