package memory

import (
	"context"
	"fmt"

	"github.com/binetime/binetime/internal/domain/team"
)

type TeamRepository struct {
	db *Database
}

func (r *TeamRepository) ListByOwner(_ context.Context, ownerID string) ([]team.WithLeague, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]team.WithLeague, 0)
	for _, teamID := range r.db.teamOrder {
		t := r.db.teams[teamID]
		if t.OwnerID != ownerID {
			continue
		}
		out = append(out, team.WithLeague{Team: t, League: r.db.leagues[t.LeagueID]})
	}
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.WithLeague, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	t, ok := r.db.teams[teamID]
	if !ok {
		return team.WithLeague{}, false, nil
	}
	return team.WithLeague{Team: t, League: r.db.leagues[t.LeagueID]}, true, nil
}

func (r *TeamRepository) GetByOwnerAndLeague(_ context.Context, ownerID, leagueID string) (team.Team, bool, error) {
	return r.find(func(t team.Team) bool { return t.OwnerID == ownerID && t.LeagueID == leagueID })
}

func (r *TeamRepository) GetByRosterAndLeague(_ context.Context, sleeperRosterID int, leagueID string) (team.Team, bool, error) {
	return r.find(func(t team.Team) bool { return t.SleeperRosterID == sleeperRosterID && t.LeagueID == leagueID })
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) (team.Team, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.leagues[t.LeagueID]; !exists {
		return team.Team{}, fmt.Errorf("league %s does not exist", t.LeagueID)
	}
	if _, exists := r.db.teams[t.ID]; exists {
		return team.Team{}, fmt.Errorf("team %s already exists", t.ID)
	}
	for _, existing := range r.db.teams {
		if existing.LeagueID != t.LeagueID {
			continue
		}
		if existing.OwnerID == t.OwnerID || existing.SleeperRosterID == t.SleeperRosterID {
			return team.Team{}, team.ErrDuplicate
		}
	}
	r.db.teams[t.ID] = t
	r.db.teamOrder = append(r.db.teamOrder, t.ID)
	return t, nil
}

func (r *TeamRepository) find(match func(team.Team) bool) (team.Team, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, teamID := range r.db.teamOrder {
		if t := r.db.teams[teamID]; match(t) {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}
