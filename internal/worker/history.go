// Package worker holds the asynq task handlers run by `ideaforge worker`.
package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"ideaforge/internal/store"
	"ideaforge/internal/tasks"
)

// HistoryDeps are the dependencies of the history handler.
type HistoryDeps struct {
	History store.HistoryWriter
}

// HandleRecordHistory appends the task's batch to the user's history. A
// payload that does not decode is not retried.
func HandleRecordHistory(deps HistoryDeps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		p, err := tasks.ParseRecordHistoryPayload(t)
		if err != nil {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if p.UserID == "" {
			return fmt.Errorf("history task without user id: %w", asynq.SkipRetry)
		}
		if err := deps.History.Append(ctx, p.UserID, p.Suggestions); err != nil {
			if errors.Is(err, store.ErrNoUserID) {
				return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
			}
			return err
		}
		log.WithFields(log.Fields{"user_id": p.UserID, "count": len(p.Suggestions)}).Debug("Recorded suggestion history")
		return nil
	}
}

// RegisterHandlers wires every task type this worker understands into mux.
func RegisterHandlers(mux *asynq.ServeMux, history HistoryDeps) {
	mux.HandleFunc(tasks.TypeRecordHistory, HandleRecordHistory(history))
}
