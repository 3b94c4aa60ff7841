package httpapi

import "net/http"

func (h *Handler) GetDefaultUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDefaultUser")
	defer span.End()

	profile, err := h.userService.DefaultUser(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get default user failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, defaultUserDTO{
		User:   userToDTO(profile.User),
		Teams:  teamsToDTO(profile.Teams),
		League: leagueToDTO(profile.League),
	})
}

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentUser")
	defer span.End()

	principal, err := mustPrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.userService.CurrentUser(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "get current user failed", "auth_user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, currentUserDTO{
		User:  userToDTO(profile.User),
		Teams: teamsToDTO(profile.Teams),
	})
}
