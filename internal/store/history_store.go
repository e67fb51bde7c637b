package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ideaforge/internal/models"
)

// KVHistoryStore keeps each user's history as one JSON array in a KVStore.
// Appends for the same user are serialized within this process.
type KVHistoryStore struct {
	kv         KVStore
	maxEntries int
	now        func() time.Time
	locks      keyedMutex
}

var _ HistoryStore = (*KVHistoryStore)(nil)

// NewKVHistoryStore keeps at most maxEntries batches per user, dropping the
// oldest first. Zero or less keeps everything.
func NewKVHistoryStore(kv KVStore, maxEntries int, now func() time.Time) *KVHistoryStore {
	if now == nil {
		now = time.Now
	}
	return &KVHistoryStore{kv: kv, maxEntries: maxEntries, now: now}
}

// Append adds one entry for the batch. Empty batches are not recorded.
func (s *KVHistoryStore) Append(ctx context.Context, userID string, suggestions []models.Suggestion) error {
	if userID == "" {
		return ErrNoUserID
	}
	if len(suggestions) == 0 {
		return nil
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	entries, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	batch := make([]models.Suggestion, len(suggestions))
	copy(batch, suggestions)
	entries = append(entries, models.HistoryEntry{
		UserID:      userID,
		Suggestions: batch,
		RecordedAt:  s.now(),
	})
	if s.maxEntries > 0 && len(entries) > s.maxEntries {
		entries = entries[len(entries)-s.maxEntries:]
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history %s: %w", userID, err)
	}
	if err := s.kv.Set(ctx, HistoryKey(userID), string(raw)); err != nil {
		return fmt.Errorf("persist history %s: %w", userID, err)
	}
	return nil
}

// List returns the user's entries oldest first; an unknown user has none.
func (s *KVHistoryStore) List(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	return s.load(ctx, userID)
}

func (s *KVHistoryStore) load(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	raw, err := s.kv.Get(ctx, HistoryKey(userID))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load history %s: %w", userID, err)
	}
	var entries []models.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", userID, err)
	}
	return entries, nil
}
