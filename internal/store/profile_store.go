package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"ideaforge/internal/models"
)

// KVProfileStore caches profiles in memory and writes them through to a
// KVStore. A failed backend write still leaves the cache updated, so the
// current process keeps working with the latest context.
type KVProfileStore struct {
	kv    KVStore
	locks keyedMutex

	mu    sync.RWMutex
	cache map[string]models.UserContext
}

var _ ProfileStore = (*KVProfileStore)(nil)

func NewKVProfileStore(kv KVStore) *KVProfileStore {
	return &KVProfileStore{kv: kv, cache: make(map[string]models.UserContext)}
}

// Put overwrites the profile for uctx.UserID. The returned error reports only
// the backend write; the in-memory copy is always updated.
func (s *KVProfileStore) Put(ctx context.Context, uctx models.UserContext) error {
	if uctx.UserID == "" {
		return ErrNoUserID
	}
	uctx = cloneContext(uctx)

	unlock := s.locks.lock(uctx.UserID)
	defer unlock()

	s.mu.Lock()
	s.cache[uctx.UserID] = uctx
	s.mu.Unlock()

	raw, err := json.Marshal(uctx)
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", uctx.UserID, err)
	}
	if err := s.kv.Set(ctx, ProfileKey(uctx.UserID), string(raw)); err != nil {
		return fmt.Errorf("persist profile %s: %w", uctx.UserID, err)
	}
	return nil
}

// Get returns the last written profile, reading through to the backend on a
// cache miss. Missing profiles yield ErrNotFound.
func (s *KVProfileStore) Get(ctx context.Context, userID string) (models.UserContext, error) {
	s.mu.RLock()
	cached, ok := s.cache[userID]
	s.mu.RUnlock()
	if ok {
		return cloneContext(cached), nil
	}

	raw, err := s.kv.Get(ctx, ProfileKey(userID))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.UserContext{}, ErrNotFound
		}
		return models.UserContext{}, fmt.Errorf("load profile %s: %w", userID, err)
	}
	var uctx models.UserContext
	if err := json.Unmarshal([]byte(raw), &uctx); err != nil {
		return models.UserContext{}, fmt.Errorf("decode profile %s: %w", userID, err)
	}

	s.mu.Lock()
	if _, raced := s.cache[userID]; !raced {
		s.cache[userID] = uctx
	}
	s.mu.Unlock()
	return cloneContext(uctx), nil
}

// cloneContext copies every slice so neither the caller nor the cache can
// alias the other's data.
func cloneContext(u models.UserContext) models.UserContext {
	u.RecentIdeas = cloneStrings(u.RecentIdeas)
	u.PreferredCategories = cloneStrings(u.PreferredCategories)
	u.Platforms = cloneStrings(u.Platforms)
	u.SuccessfulContent = cloneStrings(u.SuccessfulContent)
	u.UserBehavior.PreferredFeatures = cloneStrings(u.UserBehavior.PreferredFeatures)
	return u
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
