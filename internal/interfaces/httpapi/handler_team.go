package httpapi

import (
	"net/http"
	"strings"
)

type setActiveTeamRequest struct {
	TeamID string `json:"team_id" validate:"required,max=64"`
}

func (h *Handler) ListMyTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyTeams")
	defer span.End()

	principal, err := mustPrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.ListMine(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "auth_user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(teams))
}

func (h *Handler) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyTeam")
	defer span.End()

	principal, err := mustPrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	item, err := h.teamService.GetMine(ctx, principal, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) GetActiveTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveTeam")
	defer span.End()

	principal, err := mustPrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	active, err := h.teamService.ActiveTeam(ctx, principal, activeTeamFromCookie(r))
	if err != nil {
		h.logger.WarnContext(ctx, "get active team failed", "auth_user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := activeTeamDTO{Teams: teamsToDTO(active.All)}
	if active.Active != nil {
		dto := teamToDTO(*active.Active)
		out.ActiveTeam = &dto
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) SetActiveTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetActiveTeam")
	defer span.End()

	principal, err := mustPrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setActiveTeamRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.SetActiveTeam(ctx, principal, req.TeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "set active team failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.setActiveTeamCookie(w, item.ID)
	dto := teamToDTO(item)
	writeSuccess(ctx, w, http.StatusOK, activeTeamDTO{ActiveTeam: &dto})
}
