package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/binetime/binetime/internal/domain/award"
)

type AwardTypeRepository struct {
	db *Database
}

func (r *AwardTypeRepository) ListTypes(_ context.Context) ([]award.Type, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := append([]award.Type(nil), r.db.awardTypes...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *AwardTypeRepository) GetType(_ context.Context, typeID award.ID) (award.Type, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, t := range r.db.awardTypes {
		if t.ID == typeID {
			return t, true, nil
		}
	}
	return award.Type{}, false, nil
}

type AwardCustomizationRepository struct {
	db *Database
}

func (r *AwardCustomizationRepository) ListByLeague(_ context.Context, leagueID string) ([]award.Customization, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]award.Customization, 0)
	for key, c := range r.db.customs {
		if key.leagueID == leagueID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AwardTypeID < out[j].AwardTypeID })
	return out, nil
}

// Upsert keeps the first row's id and creation time for a (league, award type).
func (r *AwardCustomizationRepository) Upsert(_ context.Context, c award.Customization) (award.Customization, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.leagues[c.LeagueID]; !exists {
		return award.Customization{}, fmt.Errorf("league %s does not exist", c.LeagueID)
	}
	key := customKey{leagueID: c.LeagueID, awardTypeID: c.AwardTypeID}
	if existing, ok := r.db.customs[key]; ok {
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
	}
	if c.ID == "" {
		newID, err := r.db.idGen.NewID()
		if err != nil {
			return award.Customization{}, fmt.Errorf("generate customization id: %w", err)
		}
		c.ID = newID
	}
	r.db.customs[key] = c
	return c, nil
}

func (r *AwardCustomizationRepository) Deactivate(_ context.Context, leagueID string, awardTypeID award.ID) (award.Customization, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now().UTC()
	key := customKey{leagueID: leagueID, awardTypeID: awardTypeID}
	c, ok := r.db.customs[key]
	if !ok {
		newID, err := r.db.idGen.NewID()
		if err != nil {
			return award.Customization{}, fmt.Errorf("generate customization id: %w", err)
		}
		c = award.Customization{ID: newID, LeagueID: leagueID, AwardTypeID: awardTypeID, CreatedAt: now}
	}
	c.IsActive = false
	c.UpdatedAt = now
	r.db.customs[key] = c
	return c, nil
}
