package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nhl-stats-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(h *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Health)
	mux.HandleFunc("GET /api/teams", h.Teams)
	mux.HandleFunc("GET /api/schedule/{team_abbr}/{season}", h.TeamSchedule)
	mux.HandleFunc("GET /api/stats/{team_abbr}/{season}", h.TeamStats)
	mux.HandleFunc("GET /api/standings", h.Standings)
	mux.HandleFunc("GET /api/game/{game_id}", h.GameDetails)
	mux.HandleFunc("GET /api/player/{player_id}/career", h.PlayerCareer)
	mux.HandleFunc("GET /api/injuries/{team_abbr}", h.TeamInjuries)
	mux.HandleFunc("GET /api/seasons", h.Seasons)
	return mux
}
