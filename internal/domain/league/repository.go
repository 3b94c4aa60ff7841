package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	GetBySleeperID(ctx context.Context, sleeperLeagueID string) (League, bool, error)
	GetDefault(ctx context.Context) (League, bool, error)
	Create(ctx context.Context, l League) (League, error)
}
