package award

import "context"

// TypeRepository reads the award catalog.
type TypeRepository interface {
	ListTypes(ctx context.Context) ([]Type, error)
	GetType(ctx context.Context, id ID) (Type, bool, error)
}

// CustomizationRepository stores per-league award overrides; at most one row
// exists per (league, award type).
type CustomizationRepository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Customization, error)
	Upsert(ctx context.Context, c Customization) (Customization, error)
	// Deactivate marks the league's override inactive, creating an empty
	// inactive row when none exists.
	Deactivate(ctx context.Context, leagueID string, awardTypeID ID) (Customization, error)
}
