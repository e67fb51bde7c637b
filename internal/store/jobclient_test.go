package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ideaforge/internal/models"
	"ideaforge/internal/store"
	"ideaforge/internal/tasks"
)

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task, opts)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

func (m *MockEnqueuer) Close() error { return m.Called().Error(0) }

func TestAsynqHistoryRecorder_EnqueuesPayload(t *testing.T) {
	q := new(MockEnqueuer)
	var captured *asynq.Task
	q.On("EnqueueContext", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*asynq.Task) }).
		Return(&asynq.TaskInfo{ID: "t1", Queue: tasks.QueueHistory}, nil)

	r := store.NewAsynqHistoryRecorderWithClient(q)
	require.NoError(t, r.Append(context.Background(), "u1", []models.Suggestion{suggestion("a")}))

	require.NotNil(t, captured)
	assert.Equal(t, tasks.TypeRecordHistory, captured.Type())
	p, err := tasks.ParseRecordHistoryPayload(captured)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	require.Len(t, p.Suggestions, 1)
	assert.Equal(t, "a", p.Suggestions[0].ID)
}

func TestAsynqHistoryRecorder_SkipsEmptyAndReportsErrors(t *testing.T) {
	q := new(MockEnqueuer)
	r := store.NewAsynqHistoryRecorderWithClient(q)

	require.NoError(t, r.Append(context.Background(), "u1", nil))
	q.AssertNotCalled(t, "EnqueueContext", mock.Anything, mock.Anything, mock.Anything)

	q.On("EnqueueContext", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))
	err := r.Append(context.Background(), "u1", []models.Suggestion{suggestion("a")})
	assert.Error(t, err)
}
