package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/binetime/binetime/internal/domain/sleeper"
)

type sequenceIDs struct {
	prefix string
	next   atomic.Int64
}

func (g *sequenceIDs) NewID() (string, error) {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1)), nil
}

type fakeSleeper struct {
	mu       sync.Mutex
	leagues  map[string]sleeper.League
	rosters  map[string][]sleeper.Roster
	users    map[string][]sleeper.LeagueUser
	seasons  map[string]sleeper.Season
	failWith error
	calls    map[string]int

	// duringSeason runs inside GetSeasonMatchups, after the call is counted.
	duringSeason func()
}

func newFakeSleeper() *fakeSleeper {
	return &fakeSleeper{
		leagues: make(map[string]sleeper.League),
		rosters: make(map[string][]sleeper.Roster),
		users:   make(map[string][]sleeper.LeagueUser),
		seasons: make(map[string]sleeper.Season),
		calls:   make(map[string]int),
	}
}

func (f *fakeSleeper) record(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
	return f.failWith
}

func (f *fakeSleeper) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeSleeper) GetLeague(_ context.Context, leagueID string) (sleeper.League, error) {
	if err := f.record("GetLeague"); err != nil {
		return sleeper.League{}, err
	}
	l, ok := f.leagues[leagueID]
	if !ok {
		return sleeper.League{}, fmt.Errorf("%w: sleeper league %s", ErrNotFound, leagueID)
	}
	return l, nil
}

func (f *fakeSleeper) GetRosters(_ context.Context, leagueID string) ([]sleeper.Roster, error) {
	if err := f.record("GetRosters"); err != nil {
		return nil, err
	}
	return f.rosters[leagueID], nil
}

func (f *fakeSleeper) GetUsers(_ context.Context, leagueID string) ([]sleeper.LeagueUser, error) {
	if err := f.record("GetUsers"); err != nil {
		return nil, err
	}
	return f.users[leagueID], nil
}

func (f *fakeSleeper) GetSeasonMatchups(_ context.Context, leagueID string, weeks int) (sleeper.Season, error) {
	if err := f.record("GetSeasonMatchups"); err != nil {
		return nil, err
	}
	if f.duringSeason != nil {
		f.duringSeason()
	}
	season := f.seasons[leagueID]
	if len(season) > weeks {
		season = season[:weeks]
	}
	return season, nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// seedSleeperLeague registers a four-roster league with two played weeks.
func seedSleeperLeague(f *fakeSleeper, leagueID string) {
	f.leagues[leagueID] = sleeper.League{LeagueID: leagueID, Name: "Hop Yard", Season: "2024", TotalRosters: 4}
	f.rosters[leagueID] = []sleeper.Roster{
		{RosterID: 1, OwnerID: "u1", Settings: &sleeper.RosterSettings{Wins: 1, Losses: 1, Fpts: 210, FptsAgainst: 200}},
		{RosterID: 2, OwnerID: "u2", Settings: &sleeper.RosterSettings{Wins: 2, Fpts: 230, FptsAgainst: 180, FptsAgainstDecimal: 50}},
		{RosterID: 3, OwnerID: "u3", Settings: &sleeper.RosterSettings{Wins: 1, Losses: 1, Fpts: 190, FptsAgainst: 205}},
		{RosterID: 4, OwnerID: "u4", Settings: &sleeper.RosterSettings{Losses: 2, Fpts: 170, FptsAgainst: 215}},
	}
	f.users[leagueID] = []sleeper.LeagueUser{
		{UserID: "u1", Username: "amber", Metadata: &sleeper.UserMetadata{TeamName: strPtr("Cascade Crushers")}},
		{UserID: "u2", Username: "citra", DisplayName: strPtr("Citra King")},
		{UserID: "u3", Username: "mosaic"},
		{UserID: "u4", Username: "simcoe", Metadata: &sleeper.UserMetadata{TeamName: strPtr("")}},
	}
	f.seasons[leagueID] = sleeper.Season{
		{
			{RosterID: 1, MatchupID: intPtr(1), Points: 110},
			{RosterID: 2, MatchupID: intPtr(1), Points: 120},
			{RosterID: 3, MatchupID: intPtr(2), Points: 95},
			{RosterID: 4, MatchupID: intPtr(2), Points: 80},
		},
		{
			{RosterID: 1, MatchupID: intPtr(1), Points: 100},
			{RosterID: 4, MatchupID: intPtr(1), Points: 90},
			{RosterID: 2, MatchupID: intPtr(2), Points: 110},
			{RosterID: 3, MatchupID: intPtr(2), Points: 95},
		},
	}
}
