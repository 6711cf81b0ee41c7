package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"

	appstandings "github.com/preston-bernstein/standings-service/internal/app/standings"
	domain "github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/http/middleware"
	"github.com/preston-bernstein/standings-service/internal/logging"
)

// DefaultServiceName is reported by the status endpoint when none is configured.
const DefaultServiceName = "Eredivisie & KKD Standings Service"

// StandingsService is the read side the handlers need.
type StandingsService interface {
	Standings(league domain.League, top int) (domain.Response, error)
	Status() []appstandings.LeagueStatus
}

// Handler wires HTTP routes to the standings service.
type Handler struct {
	svc         StandingsService
	serviceName string
	logger      *slog.Logger
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc StandingsService, serviceName string, logger *slog.Logger) *Handler {
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	return &Handler{
		svc:         svc,
		serviceName: serviceName,
		logger:      logger,
	}
}

// Root reports the service status with per-league update time and team count.
// Leagues without a snapshot report a null update time and zero teams.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	body := map[string]any{
		"service": h.serviceName,
		"status":  "running",
	}
	for _, st := range h.svc.Status() {
		prefix := st.League.String()
		var lastUpdated any
		if st.Available {
			lastUpdated = st.LastUpdated
		}
		body[prefix+"_last_updated"] = lastUpdated
		body[prefix+"_teams_count"] = st.TeamsCount
	}
	writeJSON(w, nethttp.StatusOK, body, h.logger)
}

// Eredivisie serves the Eredivisie table.
func (h *Handler) Eredivisie(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveStandings(w, r, domain.LeagueEredivisie)
}

// KKD serves the Keuken Kampioen Divisie table.
func (h *Handler) KKD(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveStandings(w, r, domain.LeagueKKD)
}

// LeagueStandings serves the table named by the {league} path parameter.
func (h *Handler) LeagueStandings(w nethttp.ResponseWriter, r *nethttp.Request) {
	league, ok := domain.ParseLeague(chi.URLParam(r, "league"))
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "unknown league", h.logger)
		return
	}
	h.serveStandings(w, r, league)
}

func (h *Handler) serveStandings(w nethttp.ResponseWriter, r *nethttp.Request, league domain.League) {
	logger := middleware.RequestLogger(r, h.logger)
	top, err := parseTop(r.URL.Query().Get("top"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid top parameter (expected integer)", logger)
		return
	}

	resp, err := h.svc.Standings(league, top)
	switch {
	case errors.Is(err, appstandings.ErrUnknownLeague):
		writeError(w, r, nethttp.StatusNotFound, "unknown league", logger)
		return
	case errors.Is(err, appstandings.ErrNotAvailable):
		logging.Warn(logger, "standings requested before first refresh",
			slog.String(logging.FieldLeague, league.String()),
		)
		writeError(w, r, nethttp.StatusServiceUnavailable, league.DisplayName()+" standings data not available", logger)
		return
	case err != nil:
		logging.Error(logger, "standings lookup failed", err, slog.String(logging.FieldLeague, league.String()))
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", logger)
		return
	}

	logging.Info(logger, "served standings",
		slog.String(logging.FieldLeague, league.String()),
		slog.Int(logging.FieldCount, len(resp.Standings)),
	)
	writeJSON(w, nethttp.StatusOK, resp, logger)
}

// parseTop reads the optional top parameter. Absent means the full table.
func parseTop(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// Health reports liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports ready once every league has a published snapshot.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	var missing []string
	for _, st := range h.svc.Status() {
		if !st.Available {
			missing = append(missing, st.League.String())
		}
	}
	if len(missing) == 0 {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, "standings not available: "+strings.Join(missing, ", "), h.logger)
}

// NotFound answers unmatched routes with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
