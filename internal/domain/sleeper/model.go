// Package sleeper holds the read-only season data published by the Sleeper
// fantasy platform, decoded into explicit types.
package sleeper

import "github.com/shopspring/decimal"

type League struct {
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	Status       string `json:"status"`
	Sport        string `json:"sport"`
	TotalRosters int    `json:"total_rosters"`
	PreviousID   string `json:"previous_league_id"`
	DraftID      string `json:"draft_id"`
	SeasonType   string `json:"season_type"`
}

// RosterSettings carries season totals. Points are split by Sleeper into an
// integer part and hundredths; a null upstream value decodes as zero.
type RosterSettings struct {
	Wins               int   `json:"wins"`
	Losses             int   `json:"losses"`
	Ties               int   `json:"ties"`
	Fpts               int64 `json:"fpts"`
	FptsDecimal        int64 `json:"fpts_decimal"`
	FptsAgainst        int64 `json:"fpts_against"`
	FptsAgainstDecimal int64 `json:"fpts_against_decimal"`
	Division           *int  `json:"division,omitempty"`
}

func (s RosterSettings) PointsFor() float64 {
	return combine(s.Fpts, s.FptsDecimal)
}

func (s RosterSettings) PointsAgainst() float64 {
	return combine(s.FptsAgainst, s.FptsAgainstDecimal)
}

func combine(whole, hundredths int64) float64 {
	return decimal.NewFromInt(whole).Add(decimal.New(hundredths, -2)).InexactFloat64()
}

type Roster struct {
	RosterID int             `json:"roster_id"`
	OwnerID  string          `json:"owner_id"`
	LeagueID string          `json:"league_id"`
	Starters []string        `json:"starters"`
	Players  []string        `json:"players"`
	Settings *RosterSettings `json:"settings"`
}

// Season returns the roster settings, or zero totals when Sleeper sent none.
func (r Roster) Season() RosterSettings {
	if r.Settings == nil {
		return RosterSettings{}
	}
	return *r.Settings
}

type UserMetadata struct {
	TeamName *string `json:"team_name,omitempty"`
}

type LeagueUser struct {
	UserID      string        `json:"user_id"`
	Username    string        `json:"username"`
	DisplayName *string       `json:"display_name,omitempty"`
	Avatar      string        `json:"avatar"`
	Metadata    *UserMetadata `json:"metadata,omitempty"`
}

// CustomTeamName is the non-empty team name a user set in Sleeper, if any.
func (u LeagueUser) CustomTeamName() (string, bool) {
	if u.Metadata == nil {
		return "", false
	}
	return nonEmpty(u.Metadata.TeamName)
}

func (u LeagueUser) Display() (string, bool) {
	return nonEmpty(u.DisplayName)
}

func nonEmpty(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

// MatchupRecord is one roster's line for one week. Rosters sharing a
// MatchupID in the same week played each other; a nil MatchupID means a bye.
type MatchupRecord struct {
	RosterID       int                `json:"roster_id"`
	MatchupID      *int               `json:"matchup_id"`
	Points         float64            `json:"points"`
	Starters       []string           `json:"starters,omitempty"`
	Players        []string           `json:"players,omitempty"`
	StartersPoints []float64          `json:"starters_points,omitempty"`
	PlayersPoints  map[string]float64 `json:"players_points,omitempty"`
}

// Score is the week total as Sleeper reports it in points. Commissioner
// custom_points overrides are not applied.
func (m MatchupRecord) Score() float64 {
	return m.Points
}

// Week is every matchup record of a single scoring week.
type Week []MatchupRecord

// Season is every week in order: index 0 is week 1.
type Season []Week

type NFLState struct {
	Week           int    `json:"week"`
	Season         string `json:"season"`
	SeasonType     string `json:"season_type"`
	DisplayWeek    int    `json:"display_week"`
	LeagueSeason   string `json:"league_season"`
	PreviousSeason string `json:"previous_season"`
}
