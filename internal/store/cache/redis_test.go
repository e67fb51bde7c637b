package cache

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaforge/internal/store"
)

func TestNewRedisStore_RequiresAddr(t *testing.T) {
	_, err := NewRedisStore(context.Background(), Options{})
	require.Error(t, err)
}

// Runs only when IDEAFORGE_TEST_REDIS_ADDR points at a scratch Redis.
func TestRedisStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("IDEAFORGE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("IDEAFORGE_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	s, err := NewRedisStore(ctx, Options{Addr: addr})
	require.NoError(t, err)
	defer s.Close()

	key := "ideaforge:test:" + t.Name()
	require.NoError(t, s.Set(ctx, key, "value"))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	_, err = s.Get(ctx, key+":missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
