package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/binetime/binetime/internal/usecase"
)

type customizeAwardRequest struct {
	AwardTypeID string `json:"award_type_id" validate:"omitempty,max=64"`
	CustomName  string `json:"custom_name" validate:"required,max=60"`
	CustomIcon  string `json:"custom_icon" validate:"omitempty,max=16"`
}

func (h *Handler) ListAwardConfigs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAwardConfigs")
	defer span.End()

	principal, err := mustPrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	configs, err := h.awardConfigService.LeagueConfigs(ctx, principal, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list award configs failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, awardConfigsToDTO(configs))
}

func (h *Handler) GetAwardSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAwardSettings")
	defer span.End()

	principal, err := mustPrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	settings, err := h.awardConfigService.LeagueSettings(ctx, principal, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get award settings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	customs := make([]customizationDTO, 0, len(settings.Customizations))
	for _, c := range settings.Customizations {
		customs = append(customs, customizationToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, awardSettingsDTO{
		Configs:        awardConfigsToDTO(settings.Configs),
		Customizations: customs,
	})
}

// CustomizeAward serves both POST (type in body) and PUT (type in path).
func (h *Handler) CustomizeAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CustomizeAward")
	defer span.End()

	principal, err := mustPrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req customizeAwardRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	awardTypeID := strings.TrimSpace(req.AwardTypeID)
	if pathTypeID := strings.TrimSpace(r.PathValue("awardTypeID")); pathTypeID != "" {
		if awardTypeID != "" && awardTypeID != pathTypeID {
			writeError(ctx, w, fmt.Errorf("%w: award type id mismatch between path and payload", usecase.ErrInvalidInput))
			return
		}
		awardTypeID = pathTypeID
	}

	custom, err := h.awardConfigService.Customize(ctx, principal, usecase.CustomizeAwardInput{
		LeagueID:    leagueID,
		AwardTypeID: awardTypeID,
		CustomName:  req.CustomName,
		CustomIcon:  req.CustomIcon,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "customize award failed", "league_id", leagueID, "award_type_id", awardTypeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, customizationToDTO(custom))
}

func (h *Handler) DisableAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DisableAward")
	defer span.End()

	principal, err := mustPrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	awardTypeID := strings.TrimSpace(r.PathValue("awardTypeID"))
	custom, err := h.awardConfigService.Disable(ctx, principal, leagueID, awardTypeID)
	if err != nil {
		h.logger.WarnContext(ctx, "disable award failed", "league_id", leagueID, "award_type_id", awardTypeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, customizationToDTO(custom))
}

func (h *Handler) GetAwardResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAwardResults")
	defer span.End()

	principal, err := mustPrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	sheet, err := h.awardService.LeagueAwards(ctx, principal, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "compute awards failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, awardResultsToDTO(sheet))
}
