package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domain "github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/http/middleware"
	"github.com/preston-bernstein/standings-service/internal/http/requestutil"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/poller"
	"github.com/preston-bernstein/standings-service/internal/sources"
)

const defaultAdminRefreshTimeout = 2 * time.Minute

// Refresher runs an on-demand refresh of one league.
type Refresher interface {
	Leagues() []domain.League
	Refresh(ctx context.Context, league domain.League) (poller.Outcome, error)
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
	timeout   time.Duration
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every call.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
		timeout:   defaultAdminRefreshTimeout,
	}
}

type refreshResult struct {
	League      string `json:"league"`
	Status      string `json:"status"`
	TeamsCount  int    `json:"teams_count,omitempty"`
	Skipped     int    `json:"skipped,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
	Failure     string `json:"failure,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Refresh scrapes the requested league (or every league) now and publishes
// the result. Guarded by a bearer token.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := middleware.RequestLogger(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String(logging.FieldClientIP, requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresher not configured", logger)
		return
	}

	leagues := h.refresher.Leagues()
	if raw := strings.TrimSpace(r.URL.Query().Get("league")); raw != "" {
		league, ok := domain.ParseLeague(raw)
		if !ok || !contains(leagues, league) {
			writeError(w, r, http.StatusBadRequest, "unknown league", logger)
			return
		}
		leagues = []domain.League{league}
	}

	// The refresh may be shared with a scheduled one, so a dropped admin
	// connection must not cancel it.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), h.timeout)
	defer cancel()

	status := http.StatusOK
	results := make([]refreshResult, 0, len(leagues))
	for _, league := range leagues {
		out, err := h.refresher.Refresh(ctx, league)
		if err != nil {
			status = http.StatusBadGateway
			results = append(results, refreshResult{
				League:  league.String(),
				Status:  "failed",
				Failure: string(sources.Classify(err)),
				Error:   err.Error(),
			})
			continue
		}
		results = append(results, refreshResult{
			League:      league.String(),
			Status:      "ok",
			TeamsCount:  out.TeamsCount,
			Skipped:     out.Skipped,
			LastUpdated: out.LastUpdated,
		})
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "failed"
	}
	logging.Info(logger, "admin refresh complete",
		slog.String("status", overall),
		slog.Int(logging.FieldCount, len(results)),
	)
	writeJSON(w, status, map[string]any{
		"status":  overall,
		"results": results,
	}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return ok && subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}

func contains(leagues []domain.League, league domain.League) bool {
	for _, l := range leagues {
		if l == league {
			return true
		}
	}
	return false
}
