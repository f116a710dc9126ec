package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-calendar/internal/assistant"
	"task-calendar/internal/assistant/repository"
	"task-calendar/pkg/log"
)

type fakeClient struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeClient) Get(ctx context.Context, key string) *goredis.StringCmd {
	if f.failErr != nil {
		return goredis.NewStringResult("", f.failErr)
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd {
	if f.failErr != nil {
		return goredis.NewStatusResult("", f.failErr)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	if f.failErr != nil {
		return goredis.NewIntResult(0, f.failErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

func TestRedisRepository(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Round trip keeps history order and ttl", func(t *testing.T) {
		client := newFakeClient()
		repo := New(client, time.Hour, log.NewNop())

		s := assistant.NewSession("web-1")
		for _, u := range []string{"a", "b", "c", "d", "e", "f"} {
			s.History.Push(assistant.Turn{User: u, Assistant: "ok", Timestamp: ts})
		}
		s.LastResponse = "ok"
		require.NoError(t, repo.Save(ctx, s))

		assert.Contains(t, client.data, "assistant:session:web-1")
		assert.Equal(t, time.Hour, client.ttls["assistant:session:web-1"])

		got, err := repo.Get(ctx, "web-1")
		require.NoError(t, err)
		turns := got.Turns()
		require.Len(t, turns, assistant.HistorySize)
		assert.Equal(t, "b", turns[0].User)
		assert.Equal(t, "f", turns[4].User)
		assert.True(t, turns[0].Timestamp.Equal(ts))
		assert.Equal(t, "ok", got.LastResponse)
	})

	t.Run("Missing key", func(t *testing.T) {
		repo := New(newFakeClient(), time.Hour, log.NewNop())
		_, err := repo.Get(ctx, "nope")
		assert.ErrorIs(t, err, assistant.ErrSessionNotFound)
	})

	t.Run("Corrupt payload", func(t *testing.T) {
		client := newFakeClient()
		client.data["assistant:session:bad"] = "{not json"
		repo := New(client, time.Hour, log.NewNop())
		_, err := repo.Get(ctx, "bad")
		assert.ErrorIs(t, err, repository.ErrFailedToGet)
	})

	t.Run("Delete", func(t *testing.T) {
		client := newFakeClient()
		repo := New(client, time.Hour, log.NewNop())
		require.NoError(t, repo.Save(ctx, assistant.NewSession("x")))
		require.NoError(t, repo.Delete(ctx, "x"))
		_, err := repo.Get(ctx, "x")
		assert.ErrorIs(t, err, assistant.ErrSessionNotFound)
	})

	t.Run("Connection errors are wrapped", func(t *testing.T) {
		client := newFakeClient()
		client.failErr = errors.New("connection reset")
		repo := New(client, time.Hour, log.NewNop())

		_, err := repo.Get(ctx, "x")
		assert.ErrorIs(t, err, repository.ErrFailedToGet)
		assert.ErrorIs(t, repo.Save(ctx, assistant.NewSession("x")), repository.ErrFailedToSave)
		assert.ErrorIs(t, repo.Delete(ctx, "x"), repository.ErrFailedToDelete)
	})
}
