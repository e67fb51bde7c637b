package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"ideaforge/internal/models"
)

// Defines constants for task types used in Asynq.

const (
	// TypeRecordHistory appends a batch of served suggestions to a user's history.
	TypeRecordHistory = "history:record"

	// QueueHistory is the queue history tasks are enqueued on.
	QueueHistory = "history"
)

// RecordHistoryPayload is the JSON body of a TypeRecordHistory task.
type RecordHistoryPayload struct {
	UserID      string              `json:"user_id"`
	Suggestions []models.Suggestion `json:"suggestions"`
}

func NewRecordHistoryTask(userID string, suggestions []models.Suggestion) (*asynq.Task, error) {
	b, err := json.Marshal(RecordHistoryPayload{UserID: userID, Suggestions: suggestions})
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", TypeRecordHistory, err)
	}
	return asynq.NewTask(TypeRecordHistory, b), nil
}

func ParseRecordHistoryPayload(t *asynq.Task) (RecordHistoryPayload, error) {
	var p RecordHistoryPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("decode %s payload: %w", TypeRecordHistory, err)
	}
	return p, nil
}
