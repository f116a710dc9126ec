// Package ringbuffer provides a bounded FIFO buffer that evicts its oldest entry when full.
package ringbuffer

import "encoding/json"

// Ring holds at most Cap() items. Push on a full ring drops the oldest item.
// A Ring is not safe for concurrent use.
type Ring[T any] struct {
	items []T
	head  int
	size  int
}

// New creates a ring with the given capacity. Capacity below 1 is treated as 1.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{items: make([]T, capacity)}
}

// Push appends v and returns the evicted item, if any.
func (r *Ring[T]) Push(v T) (evicted T, ok bool) {
	if r.size < len(r.items) {
		r.items[(r.head+r.size)%len(r.items)] = v
		r.size++
		return evicted, false
	}
	evicted = r.items[r.head]
	r.items[r.head] = v
	r.head = (r.head + 1) % len(r.items)
	return evicted, true
}

// Items returns a copy of the contents, oldest first.
func (r *Ring[T]) Items() []T {
	out := make([]T, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.items[(r.head+i)%len(r.items)]
	}
	return out
}

// Len returns the number of stored items.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the capacity.
func (r *Ring[T]) Cap() int { return len(r.items) }

// Reset drops every item and keeps the capacity.
func (r *Ring[T]) Reset() {
	var zero T
	for i := range r.items {
		r.items[i] = zero
	}
	r.head, r.size = 0, 0
}

type ringJSON[T any] struct {
	Capacity int `json:"capacity"`
	Items    []T `json:"items"`
}

// MarshalJSON encodes the ring as its capacity and items, oldest first.
func (r *Ring[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(ringJSON[T]{Capacity: r.Cap(), Items: r.Items()})
}

// UnmarshalJSON restores a ring. If more items than capacity are present, the oldest are dropped.
func (r *Ring[T]) UnmarshalJSON(data []byte) error {
	var raw ringJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	capacity := raw.Capacity
	if capacity < 1 {
		capacity = len(raw.Items)
	}
	*r = *New[T](capacity)
	for _, it := range raw.Items {
		r.Push(it)
	}
	return nil
}
