package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/binetime/binetime/internal/domain/league"
)

type LeagueRepository struct {
	db *Database
}

func (r *LeagueRepository) List(_ context.Context) ([]league.Summary, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[string]int, len(r.db.leagues))
	for _, t := range r.db.teams {
		counts[t.LeagueID]++
	}

	out := make([]league.Summary, 0, len(r.db.leagues))
	for _, l := range r.db.leagues {
		out = append(out, league.Summary{League: l, TeamCount: counts[l.ID]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	l, ok := r.db.leagues[leagueID]
	return l, ok, nil
}

func (r *LeagueRepository) GetBySleeperID(_ context.Context, sleeperLeagueID string) (league.League, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, l := range r.db.leagues {
		if l.SleeperLeagueID == sleeperLeagueID {
			return l, true, nil
		}
	}
	return league.League{}, false, nil
}

func (r *LeagueRepository) GetDefault(_ context.Context) (league.League, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, l := range r.db.leagues {
		if l.IsDefault {
			return l, true, nil
		}
	}
	return league.League{}, false, nil
}

func (r *LeagueRepository) Create(_ context.Context, l league.League) (league.League, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.leagues[l.ID]; exists {
		return league.League{}, fmt.Errorf("league %s already exists", l.ID)
	}
	for _, existing := range r.db.leagues {
		if existing.SleeperLeagueID == l.SleeperLeagueID {
			return league.League{}, fmt.Errorf("%w: sleeper league %s", league.ErrDuplicate, l.SleeperLeagueID)
		}
	}
	r.db.leagues[l.ID] = l
	return l, nil
}
