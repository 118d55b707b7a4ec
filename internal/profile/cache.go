package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/skillforge/internal/metrics"
)

type cacheKey struct {
	owner   uuid.UUID
	profile uuid.UUID
}

// cachedProfileEntry wraps a profile with version metadata for cache invalidation
type cachedProfileEntry struct {
	Version  string
	Profile  *Profile
	CachedAt time.Time
}

// CachedRepository is a read-through LRU in front of another Repository.
// Entries are stored and returned as clones so callers never share state with the cache.
// Listings always go to the backing store because it is the only source of ordering.
type CachedRepository struct {
	inner Repository
	lru   *expirable.LRU[cacheKey, *cachedProfileEntry]
}

// NewCachedRepository wraps inner with a cache of size entries living for ttl.
func NewCachedRepository(inner Repository, size int, ttl time.Duration) *CachedRepository {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedRepository{
		inner: inner,
		lru:   expirable.NewLRU[cacheKey, *cachedProfileEntry](size, nil, ttl),
	}
}

func (c *CachedRepository) get(key cacheKey) (*Profile, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.Profile.Clone(), true
}

func (c *CachedRepository) set(p *Profile) {
	c.lru.Add(cacheKey{owner: p.OwnerID, profile: p.ID}, &cachedProfileEntry{
		Version:  CacheSchemaVersion,
		Profile:  p.Clone(),
		CachedAt: time.Now(),
	})
}

// Save writes through and refreshes the cached copy on success.
func (c *CachedRepository) Save(ctx context.Context, p *Profile) error {
	if err := c.inner.Save(ctx, p); err != nil {
		c.lru.Remove(cacheKey{owner: p.OwnerID, profile: p.ID})
		return err
	}
	c.set(p)
	return nil
}

// Load serves from cache when possible.
func (c *CachedRepository) Load(ctx context.Context, ownerID, profileID uuid.UUID) (*Profile, error) {
	key := cacheKey{owner: ownerID, profile: profileID}
	if p, ok := c.get(key); ok {
		metrics.ProfileCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return p, nil
	}
	metrics.ProfileCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	p, err := c.inner.Load(ctx, ownerID, profileID)
	if err != nil || p == nil {
		return p, err
	}
	c.set(p)
	return p, nil
}

// LoadAll reads the backing store and refreshes every returned entry.
func (c *CachedRepository) LoadAll(ctx context.Context, ownerID uuid.UUID) ([]*Profile, error) {
	profiles, err := c.inner.LoadAll(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		c.set(p)
	}
	return profiles, nil
}

// Delete removes from both the store and the cache.
func (c *CachedRepository) Delete(ctx context.Context, ownerID, profileID uuid.UUID) (bool, error) {
	c.lru.Remove(cacheKey{owner: ownerID, profile: profileID})
	return c.inner.Delete(ctx, ownerID, profileID)
}

func (c *CachedRepository) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return c.inner.Count(ctx, ownerID)
}

// Purge empties the cache.
func (c *CachedRepository) Purge() {
	c.lru.Purge()
}

// Len reports how many profiles are cached.
func (c *CachedRepository) Len() int {
	return c.lru.Len()
}
