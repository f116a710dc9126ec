package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"task-calendar/internal/event/repository"
	"task-calendar/internal/model"
)

// implRepository keeps events in creation order.
type implRepository struct {
	mu     sync.RWMutex
	order  []string
	events map[string]model.Event
}

// New creates an in-memory Repository for events.
func New() repository.Repository {
	return &implRepository{events: make(map[string]model.Event)}
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[opt.ID]; exists || opt.ID == "" {
		return model.Event{}, repository.ErrFailedToInsert
	}

	e := model.Event{
		ID:          opt.ID,
		Title:       opt.Title,
		Start:       opt.Start,
		End:         copyTime(opt.End),
		Description: opt.Description,
		CreatedBy:   opt.CreatedBy,
		CreatedAt:   opt.CreatedAt,
		UpdatedAt:   opt.CreatedAt,
	}
	r.events[e.ID] = e
	r.order = append(r.order, e.ID)
	return clone(e), nil
}

func (r *implRepository) GetOneEvent(ctx context.Context, opt repository.GetOneEventOptions) (model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		e := r.events[id]
		if opt.ID != "" && e.ID != opt.ID {
			continue
		}
		if opt.CreatedBy != "" && e.CreatedBy != opt.CreatedBy {
			continue
		}
		return clone(e), nil
	}
	return model.Event{}, nil
}

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.filter(func(e model.Event) bool {
		return opt.CreatedBy == "" || e.CreatedBy == opt.CreatedBy
	})
	total := len(matched)

	if opt.Offset > 0 {
		if opt.Offset >= len(matched) {
			return []model.Event{}, total, nil
		}
		matched = matched[opt.Offset:]
	}
	if opt.Limit > 0 && opt.Limit < len(matched) {
		matched = matched[:opt.Limit]
	}
	return matched, total, nil
}

func (r *implRepository) SearchEvents(ctx context.Context, opt repository.SearchEventsOptions) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(opt.Text)
	matched := r.filter(func(e model.Event) bool {
		if opt.CreatedBy != "" && e.CreatedBy != opt.CreatedBy {
			return false
		}
		return strings.Contains(strings.ToLower(e.Title), needle)
	})

	// Stable sort keeps creation order among equal ranks.
	sort.SliceStable(matched, func(i, j int) bool {
		ti, tj := strings.ToLower(matched[i].Title), strings.ToLower(matched[j].Title)
		ei, ej := ti == needle, tj == needle
		if ei != ej {
			return ei
		}
		return strings.Index(ti, needle) < strings.Index(tj, needle)
	})

	if opt.Limit > 0 && opt.Limit < len(matched) {
		matched = matched[:opt.Limit]
	}
	return matched, nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, opt repository.UpdateEventOptions) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[opt.ID]
	if !ok {
		return model.Event{}, nil
	}
	e.Title = opt.Title
	e.Start = opt.Start
	e.End = copyTime(opt.End)
	e.Description = opt.Description
	e.UpdatedAt = opt.UpdatedAt
	r.events[e.ID] = e
	return clone(e), nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return nil
	}
	delete(r.events, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// filter must be called with the lock held.
func (r *implRepository) filter(keep func(model.Event) bool) []model.Event {
	out := make([]model.Event, 0, len(r.order))
	for _, id := range r.order {
		if e := r.events[id]; keep(e) {
			out = append(out, clone(e))
		}
	}
	return out
}

func clone(e model.Event) model.Event {
	e.End = copyTime(e.End)
	return e
}
