package leaderboard

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Routes.
const (
	PathLeaderboard = "/api/leaderboard"
	PathLive        = "/api/leaderboard/live"
	PathHealth      = "/healthz"
)

type handler struct {
	board  Board
	hub    *Hub
	logger *slog.Logger
	now    func() time.Time
}

// NewHandler builds the leaderboard router. hub may be nil to disable the
// live feed.
func NewHandler(board Board, hub *Hub, logger *slog.Logger) http.Handler {
	h := &handler{board: board, hub: hub, logger: logger, now: time.Now}

	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.HandleFunc(PathLeaderboard, h.top).Methods(http.MethodGet)
	r.HandleFunc(PathLeaderboard, h.submit).Methods(http.MethodPost)
	r.HandleFunc(PathLeaderboard, preflight).Methods(http.MethodOptions)
	if hub != nil {
		r.Handle(PathLive, hub).Methods(http.MethodGet)
	}
	r.HandleFunc(PathHealth, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}).Methods(http.MethodGet)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w)
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
	})

	return r
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (h *handler) submit(w http.ResponseWriter, r *http.Request) {
	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.logger.Warn("invalid payload", "error", err)
		writeJSON(w, http.StatusBadRequest, errorBody{Error: ErrInvalidEntry.Error()})
		return
	}

	entry, err := sub.Entry(h.now())
	if errors.Is(err, ErrInvalidEntry) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	stored, err := h.board.Add(r.Context(), entry)
	if err != nil {
		h.logger.Error("failed to store entry", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Server error", Details: err.Error()})
		return
	}
	h.logger.Info("score submitted", "name", stored.Name, "height", stored.Height)

	if h.hub != nil {
		h.hub.Broadcast(stored)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *handler) top(w http.ResponseWriter, r *http.Request) {
	limit := ClampLimit(r.URL.Query().Get("limit"))

	entries, err := h.board.Top(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to load leaderboard", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Server error", Details: err.Error()})
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w)
		next.ServeHTTP(w, r)
	})
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
