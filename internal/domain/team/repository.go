package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]WithLeague, error)
	GetByID(ctx context.Context, teamID string) (WithLeague, bool, error)
	GetByOwnerAndLeague(ctx context.Context, ownerID, leagueID string) (Team, bool, error)
	GetByRosterAndLeague(ctx context.Context, sleeperRosterID int, leagueID string) (Team, bool, error)
	Create(ctx context.Context, t Team) (Team, error)
}
