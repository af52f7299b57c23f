package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nhl-stats-service/internal/app/stats"
	"github.com/preston-bernstein/nhl-stats-service/internal/logging"
)

const healthMessage = "NHL Stats Tracker API is running"

// Path parameter names shared with the router patterns.
const (
	ParamTeamAbbr = "team_abbr"
	ParamSeason   = "season"
	ParamGameID   = "game_id"
	ParamPlayerID = "player_id"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Handler wires HTTP routes to the stats service.
type Handler struct {
	svc    *stats.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *stats.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// Health reports that the service is up. It never touches the provider.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	_ = r
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Message: healthMessage}, h.logger)
}

func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "fetch teams", func(ctx context.Context) (any, error) {
		return h.svc.Teams(ctx)
	})
}

func (h *Handler) TeamSchedule(w http.ResponseWriter, r *http.Request) {
	team, season := r.PathValue(ParamTeamAbbr), r.PathValue(ParamSeason)
	h.respond(w, r, "fetch team schedule", func(ctx context.Context) (any, error) {
		return h.svc.TeamSchedule(ctx, team, season)
	}, slog.String(logging.FieldTeam, team), slog.String(logging.FieldSeason, season))
}

// TeamStats returns the roster and club stats. A non-integer game_type fails like any upstream error.
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	team, season := r.PathValue(ParamTeamAbbr), r.PathValue(ParamSeason)
	rawGameType := r.URL.Query().Get("game_type")
	attrs := []any{
		slog.String(logging.FieldTeam, team),
		slog.String(logging.FieldSeason, season),
		slog.String(logging.FieldGameType, rawGameType),
	}
	h.respond(w, r, "fetch team stats", func(ctx context.Context) (any, error) {
		gameType, err := stats.ParseGameType(rawGameType)
		if err != nil {
			return nil, err
		}
		return h.svc.TeamStats(ctx, team, season, gameType)
	}, attrs...)
}

func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	h.respond(w, r, "fetch standings", func(ctx context.Context) (any, error) {
		return h.svc.Standings(ctx, date)
	}, slog.String(logging.FieldDate, date))
}

func (h *Handler) GameDetails(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue(ParamGameID)
	h.respond(w, r, "fetch game details", func(ctx context.Context) (any, error) {
		return h.svc.GameDetails(ctx, gameID)
	}, slog.String(logging.FieldGameID, gameID))
}

func (h *Handler) PlayerCareer(w http.ResponseWriter, r *http.Request) {
	playerID := r.PathValue(ParamPlayerID)
	h.respond(w, r, "fetch player career", func(ctx context.Context) (any, error) {
		return h.svc.PlayerCareer(ctx, playerID)
	}, slog.String(logging.FieldPlayerID, playerID))
}

func (h *Handler) TeamInjuries(w http.ResponseWriter, r *http.Request) {
	team := r.PathValue(ParamTeamAbbr)
	h.respond(w, r, "fetch injuries", func(ctx context.Context) (any, error) {
		return h.svc.TeamInjuries(ctx, team)
	}, slog.String(logging.FieldTeam, team))
}

// Seasons lists selectable seasons. It is computed locally and never fails.
func (h *Handler) Seasons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Seasons(), loggerFromContext(r, h.logger))
}

// respond runs call and writes its result. Any error is logged and becomes a 500 carrying the error text.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, operation string, call func(context.Context) (any, error), attrs ...any) {
	logger := loggerFromContext(r, h.logger)
	payload, err := call(r.Context())
	if err != nil {
		args := append([]any{slog.String(logging.FieldOperation, operation)}, attrs...)
		logging.Error(logger, "upstream request failed", err, args...)
		writeError(w, http.StatusInternalServerError, err.Error(), logger)
		return
	}
	writeJSON(w, http.StatusOK, payload, logger)
}
