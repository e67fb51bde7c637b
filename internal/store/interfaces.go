package store

import (
	"context"

	"ideaforge/internal/models"
)

// --- Persistence backend ---

// KVStore is the key-value backend everything else is persisted through.
// Get returns ErrNotFound for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error

	Ping(ctx context.Context) error
	Close() error
}

// --- User profiles ---

// ProfileStore keeps the last UserContext seen per user id.
type ProfileStore interface {
	Put(ctx context.Context, uctx models.UserContext) error
	Get(ctx context.Context, userID string) (models.UserContext, error)
}

// --- Suggestion history ---

// HistoryWriter records suggestions served to a user. Implementations only
// ever append.
type HistoryWriter interface {
	Append(ctx context.Context, userID string, suggestions []models.Suggestion) error
}

// HistoryStore is a HistoryWriter that can also be read back by tooling.
type HistoryStore interface {
	HistoryWriter
	List(ctx context.Context, userID string) ([]models.HistoryEntry, error)
}

const keyPrefix = "ideaforge:"

// ProfileKey and HistoryKey are the KV keys used for a user.
func ProfileKey(userID string) string { return keyPrefix + "profile:" + userID }
func HistoryKey(userID string) string { return keyPrefix + "history:" + userID }
