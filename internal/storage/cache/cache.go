// Package cache holds the in-process progress-summary cache. It owns
// its own eviction loop and shutdown instead of relying on package
// globals and ad-hoc timers.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/adityar2309/ttsai-progress/internal/models"
)

type entry struct {
	summary   models.ProgressSummary
	expiresAt time.Time
}

type Cache struct {
	mu        sync.Mutex
	summaries map[string]entry
	ttl       time.Duration
	janitor   *time.Ticker
	done      chan struct{}
	stopOnce  sync.Once
}

// New creates a cache whose entries live for ttl. A janitor goroutine
// evicts expired entries until Stop is called.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		summaries: make(map[string]entry),
		ttl:       ttl,
		janitor:   time.NewTicker(ttl),
		done:      make(chan struct{}),
	}
	go c.run()
	return c
}

func (c *Cache) run() {
	for {
		select {
		case <-c.janitor.C:
			c.evictExpired()
		case <-c.done:
			return
		}
	}
}

func (c *Cache) evictExpired() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.summaries {
		if now.After(e.expiresAt) {
			delete(c.summaries, key)
		}
	}
}

func (c *Cache) Summary(userID string, rng models.TimeRange, language string) (models.ProgressSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.summaries[summaryKey(userID, rng, language)]
	if !ok || time.Now().After(e.expiresAt) {
		return models.ProgressSummary{}, false
	}
	return e.summary, true
}

func (c *Cache) SetSummary(userID string, rng models.TimeRange, language string, summary models.ProgressSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summaries[summaryKey(userID, rng, language)] = entry{
		summary:   summary,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// InvalidateUser drops every cached summary for the user, whatever the
// range and language filter.
func (c *Cache) InvalidateUser(userID string) {
	prefix := userID + "|"
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.summaries {
		if strings.HasPrefix(key, prefix) {
			delete(c.summaries, key)
		}
	}
}

// Stop terminates the eviction loop. The cache stays usable but no
// longer evicts in the background.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		c.janitor.Stop()
		close(c.done)
	})
}

func summaryKey(userID string, rng models.TimeRange, language string) string {
	return userID + "|" + string(rng) + "|" + language
}
