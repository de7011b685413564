// internal/httpserver/server.go
//
// Read-only HTTP API over the result store.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Stats endpoint: GET /stats/{username} (summary + game history).
//   - Debug endpoint: GET /debug/words (word list counts).
//
// Notes:
//   - Nothing here starts or plays games; the API only reads finished results.
//   - CORS is origin-aware so a browser dashboard can read stats.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-cli/internal/game"
	"github.com/robalobadob/wordle-cli/internal/store"
	"github.com/robalobadob/wordle-cli/internal/words"
)

// Server bundles router, result store and the loaded word lists.
type Server struct {
	r       *chi.Mux
	store   store.Store
	answers *words.List // may be nil
	allowed []string    // nil when the dictionary failed to load
	origin  string
}

// Options configures optional parts of the Server.
type Options struct {
	Answers      *words.List
	Allowed      []string
	ClientOrigin string
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, opts Options) *Server {
	s := &Server{r: chi.NewRouter(), store: st, answers: opts.Answers, allowed: opts.Allowed, origin: opts.ClientOrigin}
	if s.origin == "" {
		s.origin = "http://localhost:5173"
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-stats","endpoints":["/health","/stats/{username}","/debug/words"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/stats/{username}", s.handleStats)
	s.r.Get("/debug/words", s.handleWords)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ STATS --------------------------------------

type gameRow struct {
	Secret   string `json:"secretWord"`
	Attempts int    `json:"attempts"`
	Result   string `json:"result"`
}

type statsRes struct {
	store.Summary
	Games []gameRow `json:"games"`
}

// handleStats returns the user's summary and game history.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(chi.URLParam(r, "username"))
	if username == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username_required"})
		return
	}
	sum, results, err := store.UserSummary(r.Context(), s.store, username)
	if err != nil {
		log.Error().Err(err).Str("user", username).Str("requestId", chimw.GetReqID(r.Context())).Msg("read stats")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "stats_unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, statsRes{Summary: sum, Games: toRows(results)})
}

func toRows(results []game.Result) []gameRow {
	rows := make([]gameRow, 0, len(results))
	for _, res := range results {
		rows = append(rows, gameRow{Secret: res.Secret, Attempts: res.Attempts, Result: string(res.Outcome)})
	}
	return rows
}

// handleWords reports word list counts and whether validation fails open.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	answers := 0
	if s.answers != nil {
		answers = s.answers.Len()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"answers":  answers,
		"allowed":  len(s.allowed),
		"failOpen": game.NewValidator(s.allowed).FailOpen(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}
