// Package cache provides the timed full-page cache backing the index
// feed. Rendered pages are stored in Redis under a common key prefix and
// expire on their own; nothing on the write path invalidates them.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// IndexPrefix keys the cached index feed pages.
const IndexPrefix = "index_page"

// IndexTTL is how long a cached index page stays fresh.
const IndexTTL = 20 * time.Second

// PageCache stores rendered response bodies keyed by page. A nil client
// turns every operation into a no-op, so the feed never depends on Redis
// being up.
type PageCache struct {
	rc     *redis.Client
	prefix string
	ttl    time.Duration
}

// NewPageCache creates a PageCache with the given key prefix and TTL
func NewPageCache(rc *redis.Client, prefix string, ttl time.Duration) *PageCache {
	return &PageCache{rc: rc, prefix: prefix, ttl: ttl}
}

func (c *PageCache) key(k string) string {
	return c.prefix + ":" + k
}

// Get returns the cached body for a key, or ok=false on miss
func (c *PageCache) Get(ctx context.Context, k string) ([]byte, bool) {
	if c.rc == nil {
		return nil, false
	}
	body, err := c.rc.Get(ctx, c.key(k)).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

// Set stores a body under the key for the cache's TTL. Errors are
// swallowed: a failed write only costs a future cache miss.
func (c *PageCache) Set(ctx context.Context, k string, body []byte) {
	if c.rc == nil {
		return
	}
	c.rc.Set(ctx, c.key(k), body, c.ttl)
}

// Clear drops every page under the prefix. Normal expiry is time-based;
// this exists for tests and operator tooling.
func (c *PageCache) Clear(ctx context.Context) error {
	if c.rc == nil {
		return nil
	}
	iter := c.rc.Scan(ctx, 0, c.prefix+":*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rc.Del(ctx, keys...).Err()
}
