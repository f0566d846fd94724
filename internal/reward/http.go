package reward

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/JoaoAlves313/streak/internal/streak"
	"github.com/JoaoAlves313/streak/internal/wallet"
)

type Handler struct {
	engine Engine
}

func NewHandler(engine Engine) *Handler {
	return &Handler{engine: engine}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

// GET /api/state
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, h.engine.State())
}

// POST /api/streaks/{id}/complete
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeErr(w, http.StatusBadRequest, "missing streak id")
		return
	}

	res, err := h.engine.Complete(id)
	if err != nil {
		if errors.Is(err, streak.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "unknown streak id")
			return
		}
		writeErr(w, http.StatusInternalServerError, "could not complete streak")
		return
	}
	// A repeated same-day completion is a quiet no-op, still 200.
	writeJSON(w, http.StatusOK, res)
}

// POST /api/streaks/{id}/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeErr(w, http.StatusBadRequest, "missing streak id")
		return
	}

	rec, err := h.engine.ResetManual(id)
	if err != nil {
		if errors.Is(err, streak.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "unknown streak id")
			return
		}
		writeErr(w, http.StatusInternalServerError, "could not reset streak")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// POST /api/store/freeze
func (h *Handler) PurchaseFreeze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	wlt, err := h.engine.PurchaseFreeze()
	if err != nil {
		if errors.Is(err, wallet.ErrInsufficientCoins) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"error":  "insufficient coins",
				"wallet": wlt,
			})
			return
		}
		writeErr(w, http.StatusInternalServerError, "could not purchase freeze")
		return
	}
	writeJSON(w, http.StatusOK, wlt)
}
