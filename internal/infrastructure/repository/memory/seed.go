package memory

import (
	"time"

	"github.com/binetime/binetime/internal/domain/award"
	"github.com/binetime/binetime/internal/domain/league"
	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
)

const (
	LeagueIDBineToShrine = "league-bine-to-shrine-2024"
	LeagueIDSandbox      = "league-sandbox-2025"

	SleeperLeagueIDBineToShrine = "1262129908398694400"
	SleeperLeagueIDSandbox      = "1263887047232331776"

	DefaultUserID    = "user-binetime-demo"
	DefaultUserEmail = "demo@binetime.invalid"
)

var seededAt = time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)

// Seed is the starting content of an in-memory database.
type Seed struct {
	Users      []user.User
	Leagues    []league.League
	Teams      []team.Team
	AwardTypes []award.Type
}

// DefaultSeed mirrors the rows the SQL migrations insert.
func DefaultSeed() Seed {
	return Seed{
		Users:      SeedUsers(),
		Leagues:    SeedLeagues(),
		Teams:      SeedTeams(),
		AwardTypes: award.DefaultTypes(),
	}
}

func SeedUsers() []user.User {
	return []user.User{
		{
			ID:        DefaultUserID,
			Email:     DefaultUserEmail,
			Name:      "BineTime Demo",
			IsDefault: true,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
	}
}

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:              LeagueIDBineToShrine,
			Name:            "Bine to Shrine Fantasy League 2024",
			Description:     "Yakima Chief Hops Fantasy League - 2024 Season",
			SleeperLeagueID: SleeperLeagueIDBineToShrine,
			IsDefault:       true,
			CreatedAt:       seededAt,
			UpdatedAt:       seededAt,
		},
		{
			ID:              LeagueIDSandbox,
			Name:            "Sandbox League 2025",
			Description:     "Sandbox - 2025 Season",
			SleeperLeagueID: SleeperLeagueIDSandbox,
			CreatedAt:       seededAt,
			UpdatedAt:       seededAt,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-demo-bine", Name: "Bine", SleeperRosterID: 1, OwnerID: DefaultUserID, LeagueID: LeagueIDBineToShrine, CreatedAt: seededAt, UpdatedAt: seededAt},
		{ID: "team-demo-sandbox", Name: "SandBox", SleeperRosterID: 1, OwnerID: DefaultUserID, LeagueID: LeagueIDSandbox, CreatedAt: seededAt, UpdatedAt: seededAt},
	}
}
