package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type item struct {
	value     any
	expiresAt time.Time
}

func (i item) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && !i.expiresAt.After(now)
}

// Store is an in-process TTL cache with per-key load deduplication.
// A zero ttl keeps entries until they are deleted.
//
// Deletes advance a version counter. A load that started before a delete of
// its key never writes its result back.
type Store struct {
	mu    sync.RWMutex
	items map[string]item
	ttl   time.Duration
	group singleflight.Group
	now   func() time.Time

	version   uint64
	deletedAt map[string]uint64
	flushedAt uint64
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		items:     make(map[string]item),
		deletedAt: make(map[string]uint64),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Generation is a token for SetIfGeneration, taken before computing a value.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// SetIfGeneration stores value unless key was deleted after gen was taken.
func (s *Store) SetIfGeneration(_ context.Context, key string, value any, gen uint64) bool {
	if key == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deletedAt[key] > gen || s.flushedAt > gen {
		return false
	}
	s.items[key] = s.newItem(value, s.ttl)
	return true
}

func (s *Store) newItem(value any, ttl time.Duration) item {
	it := item{value: value}
	if ttl > 0 {
		it.expiresAt = s.now().Add(ttl)
	}
	return it
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if it.expired(s.now()) {
		s.mu.Lock()
		if current, still := s.items[key]; still && current.expired(s.now()) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return it.value, true
}

func (s *Store) Set(ctx context.Context, key string, value any) {
	s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *Store) SetWithTTL(_ context.Context, key string, value any, ttl time.Duration) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.items[key] = s.newItem(value, ttl)
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, keys ...string) {
	s.mu.Lock()
	s.version++
	for _, key := range keys {
		delete(s.items, key)
		s.deletedAt[key] = s.version
	}
	s.mu.Unlock()

	// Later callers start a fresh load instead of joining one that began
	// before the delete.
	for _, key := range keys {
		s.group.Forget(key)
	}
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) int {
	if prefix == "" {
		return 0
	}

	removed := 0
	s.mu.Lock()
	s.version++
	s.flushedAt = s.version
	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
			removed++
		}
	}
	s.mu.Unlock()
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// GetOrLoad returns the cached value for key or runs loader once for all
// concurrent callers of the same key. Loader errors are not cached.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}
	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.group.Do(key, func() (any, error) {
		if value, ok := s.Get(ctx, key); ok {
			return value, nil
		}
		gen := s.Generation()
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.SetIfGeneration(ctx, key, loaded, gen)
		return loaded, nil
	})
	return value, err
}

// Load is the typed form of Store.GetOrLoad.
func Load[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	raw, err := s.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return zero, err
	}
	value, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("cache key %q holds %T", key, raw)
	}
	return value, nil
}
