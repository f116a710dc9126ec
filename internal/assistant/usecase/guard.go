package usecase

import "sync"

// inflight tracks sessions with a command in progress.
type inflight struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newInflight() *inflight {
	return &inflight{active: make(map[string]struct{})}
}

// acquire reports false when id is already busy. A successful acquire must be released.
func (g *inflight) acquire(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[id]; busy {
		return false
	}
	g.active[id] = struct{}{}
	return true
}

func (g *inflight) release(id string) {
	g.mu.Lock()
	delete(g.active, id)
	g.mu.Unlock()
}
