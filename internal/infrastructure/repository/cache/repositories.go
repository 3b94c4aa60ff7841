package cache

import (
	"context"
	"errors"

	"github.com/binetime/binetime/internal/domain/award"
	"github.com/binetime/binetime/internal/domain/league"
	basecache "github.com/binetime/binetime/internal/platform/cache"
)

const (
	leagueKeyPrefix    = "league:"
	awardTypeKeyPrefix = "award_type:"
)

// lookup caches a (value, exists) pair so misses are cached too.
type lookup[T any] struct {
	value  T
	exists bool
}

func loadLookup[T any](ctx context.Context, store *basecache.Store, key string, get func(context.Context) (T, bool, error)) (T, bool, error) {
	cached, err := basecache.Load(ctx, store, key, func(ctx context.Context) (lookup[T], error) {
		value, exists, err := get(ctx)
		if err != nil {
			return lookup[T]{}, err
		}
		return lookup[T]{value: value, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return cached.value, cached.exists, nil
}

// LeagueRepository caches single-league lookups. List is passed through
// because team counts change whenever someone joins.
type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.Summary, error) {
	return r.next.List(ctx)
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	return loadLookup(ctx, r.cache, leagueKeyPrefix+"id:"+leagueID, func(ctx context.Context) (league.League, bool, error) {
		return r.next.GetByID(ctx, leagueID)
	})
}

func (r *LeagueRepository) GetBySleeperID(ctx context.Context, sleeperLeagueID string) (league.League, bool, error) {
	return loadLookup(ctx, r.cache, leagueKeyPrefix+"sleeper:"+sleeperLeagueID, func(ctx context.Context) (league.League, bool, error) {
		return r.next.GetBySleeperID(ctx, sleeperLeagueID)
	})
}

func (r *LeagueRepository) GetDefault(ctx context.Context) (league.League, bool, error) {
	return loadLookup(ctx, r.cache, leagueKeyPrefix+"default", r.next.GetDefault)
}

func (r *LeagueRepository) Create(ctx context.Context, l league.League) (league.League, error) {
	created, err := r.next.Create(ctx, l)
	if errors.Is(err, league.ErrDuplicate) {
		// Another writer registered it; any cached miss is stale.
		r.cache.DeletePrefix(ctx, leagueKeyPrefix)
	}
	if err != nil {
		return league.League{}, err
	}
	r.cache.DeletePrefix(ctx, leagueKeyPrefix)
	return created, nil
}

type AwardTypeRepository struct {
	next  award.TypeRepository
	cache *basecache.Store
}

func NewAwardTypeRepository(next award.TypeRepository, cache *basecache.Store) *AwardTypeRepository {
	return &AwardTypeRepository{next: next, cache: cache}
}

func (r *AwardTypeRepository) ListTypes(ctx context.Context) ([]award.Type, error) {
	items, err := basecache.Load(ctx, r.cache, awardTypeKeyPrefix+"list", func(ctx context.Context) ([]award.Type, error) {
		items, err := r.next.ListTypes(ctx)
		if err != nil {
			return nil, err
		}
		return append([]award.Type(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]award.Type(nil), items...), nil
}

func (r *AwardTypeRepository) GetType(ctx context.Context, typeID award.ID) (award.Type, bool, error) {
	return loadLookup(ctx, r.cache, awardTypeKeyPrefix+"id:"+string(typeID), func(ctx context.Context) (award.Type, bool, error) {
		return r.next.GetType(ctx, typeID)
	})
}
