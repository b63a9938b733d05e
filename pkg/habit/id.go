package habit

import (
	"sync"
	"time"
)

// IDGenerator hands out ids derived from the wall clock in milliseconds.
// When the clock has not moved past the last issued id the next id is
// last+1, so two adds in the same millisecond never collide.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last ID
}

// NewIDGenerator returns a generator that will never issue an id at or below
// floor. Pass the largest id already in use.
func NewIDGenerator(now func() time.Time, floor ID) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now, last: floor}
}

// Next returns a fresh id.
func (g *IDGenerator) Next() ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := ID(g.now().UnixMilli())
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe raises the floor to id if it is above the last issued id.
func (g *IDGenerator) Observe(id ID) {
	g.mu.Lock()
	if id > g.last {
		g.last = id
	}
	g.mu.Unlock()
}
