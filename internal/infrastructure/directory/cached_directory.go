package directory

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"oficina_xpto/internal/usecase/interfaces"
)

const (
	defaultCacheTTL     = 10 * time.Minute
	defaultCacheEntries = 1024
)

// StaticDirectory resolves actor identities from the ACTOR_DIRECTORY env
// var, a comma-separated list of id=Display Name pairs. It stands in for the
// staff service in local and compose runs.
type StaticDirectory struct {
	names map[string]string
}

var _ interfaces.IActorDirectory = (*StaticDirectory)(nil)

func NewStaticDirectory(raw string) *StaticDirectory {
	names := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		id, name, ok := strings.Cut(pair, "=")
		id = strings.ToLower(strings.TrimSpace(id))
		name = strings.TrimSpace(name)
		if !ok || id == "" || name == "" {
			continue
		}
		names[id] = name
	}
	return &StaticDirectory{names: names}
}

func (d *StaticDirectory) DisplayName(_ context.Context, actorID string) (string, error) {
	return d.names[strings.ToLower(strings.TrimSpace(actorID))], nil
}

type cacheEntry struct {
	name      string
	expiresAt time.Time
}

// CachedDirectory decorates another directory with a TTL cache bounded in
// size. Lookups happen on the request path of every order read, so a miss
// against a slow upstream must never repeat within the TTL.
type CachedDirectory struct {
	next interfaces.IActorDirectory
	ttl  time.Duration
	max  int

	mu      sync.Mutex
	entries map[string]cacheEntry
}

var _ interfaces.IActorDirectory = (*CachedDirectory)(nil)

func NewCachedDirectory(next interfaces.IActorDirectory, ttl time.Duration, maxEntries int) *CachedDirectory {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if maxEntries <= 0 {
		maxEntries = defaultCacheEntries
	}
	return &CachedDirectory{
		next:    next,
		ttl:     ttl,
		max:     maxEntries,
		entries: make(map[string]cacheEntry),
	}
}

func (c *CachedDirectory) DisplayName(ctx context.Context, actorID string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(actorID))
	if key == "" {
		return "", nil
	}

	now := time.Now()
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && now.Before(e.expiresAt) {
		c.mu.Unlock()
		return e.name, nil
	}
	c.mu.Unlock()

	name, err := c.next.DisplayName(ctx, actorID)
	if err != nil {
		// Errors are not cached; the next lookup retries the upstream.
		log.Printf("[directory][cache] upstream lookup failed actor=%s err=%v", actorID, err)
		return "", err
	}

	c.mu.Lock()
	if len(c.entries) >= c.max {
		c.evictExpiredLocked(now)
	}
	if len(c.entries) >= c.max {
		// Still full after dropping expired entries; reset rather than grow.
		c.entries = make(map[string]cacheEntry)
	}
	c.entries[key] = cacheEntry{name: name, expiresAt: now.Add(c.ttl)}
	c.mu.Unlock()

	return name, nil
}

func (c *CachedDirectory) evictExpiredLocked(now time.Time) {
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}
