package store

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"ideaforge/internal/models"
	"ideaforge/internal/tasks"
)

// TaskEnqueuer is the part of *asynq.Client the recorder needs.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// AsynqHistoryRecorder is a HistoryWriter that defers the append to a worker
// by enqueueing a tasks.TypeRecordHistory task.
type AsynqHistoryRecorder struct {
	client TaskEnqueuer
}

var _ HistoryWriter = (*AsynqHistoryRecorder)(nil)

func NewAsynqHistoryRecorder(opt asynq.RedisClientOpt) *AsynqHistoryRecorder {
	return &AsynqHistoryRecorder{client: asynq.NewClient(opt)}
}

// NewAsynqHistoryRecorderWithClient is used with a preconfigured or fake client.
func NewAsynqHistoryRecorderWithClient(c TaskEnqueuer) *AsynqHistoryRecorder {
	return &AsynqHistoryRecorder{client: c}
}

func (r *AsynqHistoryRecorder) Close() error {
	return r.client.Close()
}

func (r *AsynqHistoryRecorder) Append(ctx context.Context, userID string, suggestions []models.Suggestion) error {
	if userID == "" {
		return ErrNoUserID
	}
	if len(suggestions) == 0 {
		return nil
	}
	task, err := tasks.NewRecordHistoryTask(userID, suggestions)
	if err != nil {
		return err
	}
	info, err := r.client.EnqueueContext(ctx, task, asynq.Queue(tasks.QueueHistory))
	if err != nil {
		return fmt.Errorf("enqueue history for %s: %w", userID, err)
	}
	log.WithFields(log.Fields{"task_id": info.ID, "queue": info.Queue, "user_id": userID}).Debug("Enqueued history task")
	return nil
}
