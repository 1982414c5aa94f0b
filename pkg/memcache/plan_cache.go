// pkg/memcache/plan_cache.go
package mem

import (
	"sync"
	"time"

	"tripmate/internal/models/response_models"
)

// PlanCache holds finished plans for a short window so a burst of identical
// requests does not re-run generation. Expired entries are dropped lazily on
// the next read.
type PlanCache struct {
	mu   sync.Mutex
	ttl  time.Duration
	data map[string]planEntry
}

type planEntry struct {
	plan      *response_models.ItineraryPlan
	expiresAt time.Time
}

func NewPlanCache(ttl time.Duration) *PlanCache {
	return &PlanCache{
		ttl:  ttl,
		data: make(map[string]planEntry),
	}
}

func (c *PlanCache) Get(key string) *response_models.ItineraryPlan {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(c.data, key) // cleanup expired
		return nil
	}
	return e.plan
}

func (c *PlanCache) Set(key string, plan *response_models.ItineraryPlan) *response_models.ItineraryPlan {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = planEntry{
		plan:      plan,
		expiresAt: time.Now().Add(c.ttl),
	}
	return plan
}

// InflightGroup coalesces concurrent work for the same key: the first caller
// runs produce, later callers for that key block on the same call and share
// its outcome. The entry is removed as soon as the call finishes, success or
// not, so the next request starts fresh.
type InflightGroup struct {
	mu    sync.Mutex
	calls map[string]*inflightCall
}

type inflightCall struct {
	done chan struct{}
	plan *response_models.ItineraryPlan
	err  error
}

func NewInflightGroup() *InflightGroup {
	return &InflightGroup{
		calls: make(map[string]*inflightCall),
	}
}

func (g *InflightGroup) Do(key string, produce func() (*response_models.ItineraryPlan, error)) (*response_models.ItineraryPlan, error) {
	g.mu.Lock()
	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		<-c.done
		return c.plan, c.err
	}

	c := &inflightCall{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	c.plan, c.err = produce()

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
	close(c.done)

	return c.plan, c.err
}
