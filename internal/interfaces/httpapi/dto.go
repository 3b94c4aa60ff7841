package httpapi

import (
	"time"

	"github.com/binetime/binetime/internal/domain/award"
	"github.com/binetime/binetime/internal/domain/league"
	"github.com/binetime/binetime/internal/domain/sleeper"
	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
	"github.com/binetime/binetime/internal/usecase"
)

type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

type leagueDTO struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	SleeperLeagueID string `json:"sleeper_league_id"`
	IsDefault       bool   `json:"is_default"`
}

type leagueSummaryDTO struct {
	leagueDTO
	TeamCount int `json:"team_count"`
}

type teamDTO struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	SleeperRosterID int        `json:"sleeper_roster_id"`
	LeagueID        string     `json:"league_id"`
	League          *leagueDTO `json:"league,omitempty"`
}

type currentUserDTO struct {
	User  userDTO   `json:"user"`
	Teams []teamDTO `json:"teams"`
}

type defaultUserDTO struct {
	User   userDTO   `json:"user"`
	Teams  []teamDTO `json:"teams"`
	League leagueDTO `json:"league"`
}

type activeTeamDTO struct {
	ActiveTeam *teamDTO  `json:"active_team"`
	Teams      []teamDTO `json:"teams,omitempty"`
}

type sleeperLeagueDTO struct {
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	Status       string `json:"status"`
	TotalRosters int    `json:"total_rosters"`
}

type sleeperTeamDTO struct {
	RosterID      int     `json:"roster_id"`
	OwnerID       string  `json:"owner_id,omitempty"`
	TeamName      string  `json:"team_name"`
	Username      string  `json:"username,omitempty"`
	DisplayName   string  `json:"display_name,omitempty"`
	Avatar        string  `json:"avatar,omitempty"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	Points        float64 `json:"points"`
	PointsAgainst float64 `json:"points_against"`
}

type sleeperLeagueTeamsDTO struct {
	League sleeperLeagueDTO `json:"league"`
	Teams  []sleeperTeamDTO `json:"teams"`
}

type awardConfigDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Customized  bool   `json:"customized"`
}

type customizationDTO struct {
	ID          string    `json:"id"`
	LeagueID    string    `json:"league_id"`
	AwardTypeID string    `json:"award_type_id"`
	CustomName  string    `json:"custom_name"`
	CustomIcon  string    `json:"custom_icon,omitempty"`
	IsActive    bool      `json:"is_active"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type awardSettingsDTO struct {
	Configs        []awardConfigDTO   `json:"configs"`
	Customizations []customizationDTO `json:"customizations"`
}

type awardEntryDTO struct {
	Rank     int     `json:"rank"`
	RosterID int     `json:"roster_id"`
	TeamName string  `json:"team_name"`
	Value    float64 `json:"value"`
	Details  string  `json:"details,omitempty"`
}

type awardDTO struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Icon              string          `json:"icon"`
	Category          string          `json:"category"`
	Available         bool            `json:"available"`
	UnavailableReason string          `json:"unavailable_reason,omitempty"`
	Winner            *awardEntryDTO  `json:"winner"`
	Leaderboard       []awardEntryDTO `json:"leaderboard"`
}

type awardResultsDTO struct {
	League        leagueDTO        `json:"league"`
	SleeperLeague sleeperLeagueDTO `json:"sleeper_league"`
	Weeks         int              `json:"weeks"`
	Awards        []awardDTO       `json:"awards"`
	GeneratedAt   time.Time        `json:"generated_at"`
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:        v.ID,
		Email:     v.Email,
		Name:      v.Name,
		IsDefault: v.IsDefault,
		CreatedAt: v.CreatedAt,
	}
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:              v.ID,
		Name:            v.Name,
		Description:     v.Description,
		SleeperLeagueID: v.SleeperLeagueID,
		IsDefault:       v.IsDefault,
	}
}

func teamToDTO(v team.WithLeague) teamDTO {
	out := teamDTO{
		ID:              v.ID,
		Name:            v.Name,
		SleeperRosterID: v.SleeperRosterID,
		LeagueID:        v.LeagueID,
	}
	if v.League.ID != "" {
		lg := leagueToDTO(v.League)
		out.League = &lg
	}
	return out
}

func teamsToDTO(items []team.WithLeague) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}

func sleeperLeagueToDTO(v sleeper.League) sleeperLeagueDTO {
	return sleeperLeagueDTO{
		LeagueID:     v.LeagueID,
		Name:         v.Name,
		Season:       v.Season,
		Status:       v.Status,
		TotalRosters: v.TotalRosters,
	}
}

func sleeperTeamToDTO(v usecase.SleeperTeam) sleeperTeamDTO {
	return sleeperTeamDTO{
		RosterID:      v.RosterID,
		OwnerID:       v.OwnerID,
		TeamName:      v.TeamName,
		Username:      v.Username,
		DisplayName:   v.DisplayName,
		Avatar:        v.Avatar,
		Wins:          v.Wins,
		Losses:        v.Losses,
		Ties:          v.Ties,
		Points:        v.Points,
		PointsAgainst: v.PointsAgainst,
	}
}

func awardConfigsToDTO(items []award.Config) []awardConfigDTO {
	out := make([]awardConfigDTO, 0, len(items))
	for _, c := range items {
		out = append(out, awardConfigDTO{
			ID:          string(c.ID),
			Name:        c.Name,
			Description: c.Description,
			Icon:        c.Icon,
			Category:    c.Category,
			Customized:  c.Customized,
		})
	}
	return out
}

func customizationToDTO(v award.Customization) customizationDTO {
	return customizationDTO{
		ID:          v.ID,
		LeagueID:    v.LeagueID,
		AwardTypeID: string(v.AwardTypeID),
		CustomName:  v.CustomName,
		CustomIcon:  v.CustomIcon,
		IsActive:    v.IsActive,
		UpdatedAt:   v.UpdatedAt,
	}
}

func awardEntryToDTO(v award.Entry) awardEntryDTO {
	return awardEntryDTO{
		Rank:     v.Rank,
		RosterID: v.RosterID,
		TeamName: v.TeamName,
		Value:    v.Value,
		Details:  v.Details,
	}
}

func awardResultsToDTO(v usecase.LeagueAwards) awardResultsDTO {
	awards := make([]awardDTO, 0, len(v.Awards))
	for _, a := range v.Awards {
		item := awardDTO{
			ID:                string(a.ID),
			Name:              a.Name,
			Description:       a.Description,
			Icon:              a.Icon,
			Category:          a.Category,
			Available:         a.Available,
			UnavailableReason: a.UnavailableReason,
			Leaderboard:       make([]awardEntryDTO, 0, len(a.Leaderboard)),
		}
		if a.Winner != nil {
			winner := awardEntryToDTO(*a.Winner)
			item.Winner = &winner
		}
		for _, e := range a.Leaderboard {
			item.Leaderboard = append(item.Leaderboard, awardEntryToDTO(e))
		}
		awards = append(awards, item)
	}

	return awardResultsDTO{
		League:        leagueToDTO(v.League),
		SleeperLeague: sleeperLeagueToDTO(v.SleeperLeague),
		Weeks:         v.Weeks,
		Awards:        awards,
		GeneratedAt:   v.GeneratedAt,
	}
}
