package httpapi

import (
	"net/http"
	"strings"

	"github.com/binetime/binetime/internal/usecase"
)

type joinLeagueRequest struct {
	SleeperLeagueID string `json:"sleeper_league_id" validate:"required,numeric,max=32"`
	SleeperRosterID int    `json:"sleeper_roster_id" validate:"required,min=1"`
	TeamName        string `json:"team_name" validate:"required,max=100"`
	LeagueName      string `json:"league_name" validate:"omitempty,max=100"`
}

func (h *Handler) GetDefaultLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDefaultLeague")
	defer span.End()

	lg, err := h.leagueService.DefaultLeague(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get default league failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(lg))
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueSummaryDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueSummaryDTO{leagueDTO: leagueToDTO(l.League), TeamCount: l.TeamCount})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) JoinLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinLeague")
	defer span.End()

	principal, err := mustPrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req joinLeagueRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.leagueService.JoinLeague(ctx, principal, usecase.JoinLeagueInput{
		SleeperLeagueID: req.SleeperLeagueID,
		SleeperRosterID: req.SleeperRosterID,
		TeamName:        req.TeamName,
		LeagueName:      req.LeagueName,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "join league failed",
			"sleeper_league_id", req.SleeperLeagueID,
			"sleeper_roster_id", req.SleeperRosterID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) ListSleeperTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSleeperTeams")
	defer span.End()

	sleeperLeagueID := strings.TrimSpace(r.PathValue("sleeperLeagueID"))
	result, err := h.leagueService.SleeperTeams(ctx, sleeperLeagueID, r.URL.Query().Get("q"))
	if err != nil {
		h.logger.WarnContext(ctx, "list sleeper teams failed", "sleeper_league_id", sleeperLeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	teams := make([]sleeperTeamDTO, 0, len(result.Teams))
	for _, t := range result.Teams {
		teams = append(teams, sleeperTeamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, sleeperLeagueTeamsDTO{
		League: sleeperLeagueToDTO(result.League),
		Teams:  teams,
	})
}
