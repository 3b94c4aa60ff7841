package usecase

import (
	"context"

	"github.com/binetime/binetime/internal/domain/sleeper"
)

// SleeperGateway is the read side of the Sleeper API the use cases depend on.
type SleeperGateway interface {
	GetLeague(ctx context.Context, leagueID string) (sleeper.League, error)
	GetRosters(ctx context.Context, leagueID string) ([]sleeper.Roster, error)
	GetUsers(ctx context.Context, leagueID string) ([]sleeper.LeagueUser, error)
	GetSeasonMatchups(ctx context.Context, leagueID string, weeks int) (sleeper.Season, error)
}
