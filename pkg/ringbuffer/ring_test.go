package ringbuffer_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"task-calendar/pkg/ringbuffer"
)

func TestRing_Push(t *testing.T) {
	t.Run("Below capacity", func(t *testing.T) {
		r := ringbuffer.New[int](5)
		for i := 1; i <= 3; i++ {
			if _, evicted := r.Push(i); evicted {
				t.Fatalf("unexpected eviction at %d", i)
			}
		}
		if got := r.Items(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
			t.Errorf("Items() = %v", got)
		}
	})

	t.Run("Six pushes keep the newest five", func(t *testing.T) {
		r := ringbuffer.New[int](5)
		var lastEvicted int
		for i := 1; i <= 6; i++ {
			if v, ok := r.Push(i); ok {
				lastEvicted = v
			}
		}
		if r.Len() != 5 {
			t.Fatalf("Len() = %d, want 5", r.Len())
		}
		if lastEvicted != 1 {
			t.Errorf("evicted %d, want 1", lastEvicted)
		}
		if got := r.Items(); !reflect.DeepEqual(got, []int{2, 3, 4, 5, 6}) {
			t.Errorf("Items() = %v", got)
		}
	})

	t.Run("Zero capacity", func(t *testing.T) {
		r := ringbuffer.New[string](0)
		r.Push("a")
		r.Push("b")
		if got := r.Items(); !reflect.DeepEqual(got, []string{"b"}) {
			t.Errorf("Items() = %v", got)
		}
	})
}

func TestRing_Reset(t *testing.T) {
	r := ringbuffer.New[int](2)
	r.Push(1)
	r.Push(2)
	r.Push(3)
	r.Reset()
	if r.Len() != 0 || r.Cap() != 2 {
		t.Fatalf("Len=%d Cap=%d after reset", r.Len(), r.Cap())
	}
	r.Push(9)
	if got := r.Items(); !reflect.DeepEqual(got, []int{9}) {
		t.Errorf("Items() = %v", got)
	}
}

func TestRing_JSON(t *testing.T) {
	r := ringbuffer.New[string](3)
	for _, s := range []string{"a", "b", "c", "d"} {
		r.Push(s)
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored := ringbuffer.New[string](1)
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored.Cap() != 3 {
		t.Errorf("Cap() = %d, want 3", restored.Cap())
	}
	if got := restored.Items(); !reflect.DeepEqual(got, []string{"b", "c", "d"}) {
		t.Errorf("Items() = %v", got)
	}

	restored.Push("e")
	if got := restored.Items(); !reflect.DeepEqual(got, []string{"c", "d", "e"}) {
		t.Errorf("Items() after push = %v", got)
	}
}
