package store_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ideaforge/internal/models"
	"ideaforge/internal/store"
	"ideaforge/internal/store/memory"
)

type MockKV struct {
	mock.Mock
}

func (m *MockKV) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockKV) Set(ctx context.Context, key, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockKV) Ping(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockKV) Close() error                   { return m.Called().Error(0) }

func suggestion(id string) models.Suggestion {
	return models.Suggestion{ID: id, Type: models.SuggestionTypeContent, Content: id, Confidence: 0.8}
}

func TestKVProfileStore_PutGet(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	s := store.NewKVProfileStore(kv)

	in := models.UserContext{UserID: "u1", Platforms: []string{"youtube"}}
	require.NoError(t, s.Put(ctx, in))
	in.Platforms[0] = "mutated"

	got, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"youtube"}, got.Platforms)

	raw, err := kv.Get(ctx, store.ProfileKey("u1"))
	require.NoError(t, err)
	assert.Contains(t, raw, "youtube")
}

func TestKVProfileStore_ReadThrough(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	require.NoError(t, store.NewKVProfileStore(kv).Put(ctx, models.UserContext{UserID: "u1", RecentIdeas: []string{"x"}}))

	fresh := store.NewKVProfileStore(kv)
	got, err := fresh.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got.RecentIdeas)

	_, err = fresh.Get(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestKVProfileStore_BackendFailureKeepsCache(t *testing.T) {
	ctx := context.Background()
	kv := new(MockKV)
	kv.On("Set", mock.Anything, store.ProfileKey("u1"), mock.Anything).Return(errors.New("down"))
	s := store.NewKVProfileStore(kv)

	err := s.Put(ctx, models.UserContext{UserID: "u1"})
	require.Error(t, err)

	got, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	kv.AssertExpectations(t)
}

func TestKVProfileStore_RequiresUserID(t *testing.T) {
	err := store.NewKVProfileStore(memory.New()).Put(context.Background(), models.UserContext{})
	assert.ErrorIs(t, err, store.ErrNoUserID)
}

func TestKVHistoryStore_AppendOnly(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	s := store.NewKVHistoryStore(memory.New(), 0, func() time.Time { return now })

	require.NoError(t, s.Append(ctx, "u1", []models.Suggestion{suggestion("a")}))
	require.NoError(t, s.Append(ctx, "u1", nil))
	require.NoError(t, s.Append(ctx, "u1", []models.Suggestion{suggestion("b"), suggestion("c")}))

	entries, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Suggestions[0].ID)
	assert.Len(t, entries[1].Suggestions, 2)
	assert.Equal(t, now, entries[1].RecordedAt)

	none, err := s.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestKVHistoryStore_RetentionDropsOldest(t *testing.T) {
	ctx := context.Background()
	s := store.NewKVHistoryStore(memory.New(), 2, nil)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Append(ctx, "u1", []models.Suggestion{suggestion(id)}))
	}

	entries, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Suggestions[0].ID)
	assert.Equal(t, "c", entries[1].Suggestions[0].ID)
}

func TestKVHistoryStore_ConcurrentAppendsAreNotLost(t *testing.T) {
	ctx := context.Background()
	s := store.NewKVHistoryStore(memory.New(), 0, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("u%d", i%2)
			assert.NoError(t, s.Append(ctx, user, []models.Suggestion{suggestion(fmt.Sprint(i))}))
		}(i)
	}
	wg.Wait()

	for _, user := range []string{"u0", "u1"} {
		entries, err := s.List(ctx, user)
		require.NoError(t, err)
		assert.Len(t, entries, 25)
		for _, e := range entries {
			assert.Equal(t, user, e.UserID)
		}
	}
}

func TestKVHistoryStore_BackendReadFailure(t *testing.T) {
	kv := new(MockKV)
	kv.On("Get", mock.Anything, store.HistoryKey("u1")).Return("", errors.New("timeout"))
	s := store.NewKVHistoryStore(kv, 0, nil)

	err := s.Append(context.Background(), "u1", []models.Suggestion{suggestion("a")})
	require.Error(t, err)
	kv.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}
