// Package matchercache caches compiled matchers keyed by expression text,
// for hot filter paths that repeatedly compile the same expressions.
package matchercache

import (
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/osmkit/stringmatch/pkg/env"
	"github.com/osmkit/stringmatch/pkg/matcher"
	"github.com/osmkit/stringmatch/pkg/pattern"
)

// Cache stores compiled matchers by expression text. Concurrent Gets for the
// same expression are single flighted: they wait on the originating compile
// rather than compiling again, and share its result. Cached matchers are
// handed out by value and are read-only, so sharing them across goroutines
// needs no locking.
type Cache struct {
	store *cache.Cache
	group singleflight.Group
}

// New creates a cache whose entries expire ttl after insertion and are swept
// every cleanupInterval. A non-positive ttl keeps entries forever.
func New(ttl, cleanupInterval time.Duration) *Cache {
	return &Cache{
		store: cache.New(ttl, cleanupInterval),
	}
}

// NewFromEnv creates a cache configured by the STRINGMATCH_CACHE_TTL and
// STRINGMATCH_CACHE_CLEANUP_INTERVAL environment variables.
func NewFromEnv() *Cache {
	return New(env.GetCacheTTL(), env.GetCacheCleanupInterval())
}

// Get returns the matcher for expr, compiling it on a miss. Compile failures
// are returned to every waiting caller and never cached, so a later
// corrected registration of the same expression text is not poisoned by an
// old failure.
func (c *Cache) Get(expr string) (matcher.Matcher, error) {
	if m, ok := c.store.Get(expr); ok {
		return m.(matcher.Matcher), nil
	}

	v, err, _ := c.group.Do(expr, func() (interface{}, error) {
		m, err := pattern.Parse(expr)
		if err != nil {
			return nil, err
		}
		c.store.Set(expr, m, cache.DefaultExpiration)
		return m, nil
	})
	if err != nil {
		return matcher.Matcher{}, err
	}

	return v.(matcher.Matcher), nil
}

// Len reports how many expressions are currently cached. It may count
// entries that have expired but have not been swept yet.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}
