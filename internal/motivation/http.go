package motivation

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /api/motivation?category=...&streak=N
//
// Always answers 200 with a message; backend failures are absorbed by the
// service's fallbacks so the dialog never breaks.
func (h *Handler) Tip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "missing category"})
		return
	}
	currentStreak, _ := strconv.Atoi(r.URL.Query().Get("streak"))

	msg := h.service.Tip(r.Context(), category, currentStreak)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"category":   category,
		"message":    msg,
		"configured": h.service.Configured(),
	})
}
