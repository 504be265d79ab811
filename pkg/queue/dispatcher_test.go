package queue_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmskit/pkg/queue"
)

type mockRepo struct {
	createFunc func(ctx context.Context, task *queue.Task) error
	tasks      []*queue.Task
}

func (m *mockRepo) CreateTask(ctx context.Context, task *queue.Task) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, task)
	}
	m.tasks = append(m.tasks, task)
	return nil
}

type rebuildIndex struct {
	Site string `json:"site"`
}

type describedJob struct {
	Entry int `json:"entry"`
}

func (describedJob) Description() string { return "publish entry" }

type unmarshalableJob struct {
	Ch chan int
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestNewDispatcher(t *testing.T) {
	t.Parallel()

	d, err := queue.NewDispatcher(nil)
	assert.ErrorIs(t, err, queue.ErrRepositoryNil)
	assert.Nil(t, d)

	d, err = queue.NewDispatcher(&mockRepo{})
	require.NoError(t, err)
	assert.NotNil(t, d)
}

func TestDispatcher_Push(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		repo := &mockRepo{}
		d, err := queue.NewDispatcher(repo, queue.WithClock(clock))
		require.NoError(t, err)

		id, err := d.Push(context.Background(), rebuildIndex{Site: "docs"})
		require.NoError(t, err)
		require.Len(t, repo.tasks, 1)

		task := repo.tasks[0]
		assert.Equal(t, id, task.ID)
		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, queue.DefaultQueueName, task.Queue)
		assert.Equal(t, "queue_test.rebuildIndex", task.Name)
		assert.Empty(t, task.Description)
		assert.Equal(t, queue.PriorityDefault, task.Priority)
		assert.Equal(t, queue.DefaultTTR, task.TTR)
		assert.True(t, task.AvailableAt.Equal(fixedNow))
		assert.True(t, task.CreatedAt.Equal(fixedNow))
		assert.JSONEq(t, `{"site":"docs"}`, string(task.Payload))
	})

	t.Run("pointer job and description", func(t *testing.T) {
		t.Parallel()

		repo := &mockRepo{}
		d, err := queue.NewDispatcher(repo)
		require.NoError(t, err)

		_, err = d.Push(context.Background(), &describedJob{Entry: 7})
		require.NoError(t, err)
		require.Len(t, repo.tasks, 1)
		assert.Equal(t, "queue_test.describedJob", repo.tasks[0].Name)
		assert.Equal(t, "publish entry", repo.tasks[0].Description)

		var decoded describedJob
		require.NoError(t, json.Unmarshal(repo.tasks[0].Payload, &decoded))
		assert.Equal(t, 7, decoded.Entry)
	})

	t.Run("push options", func(t *testing.T) {
		t.Parallel()

		repo := &mockRepo{}
		d, err := queue.NewDispatcher(repo,
			queue.WithClock(clock),
			queue.WithDefaultQueue("content"),
			queue.WithDefaultPriority(10),
			queue.WithDefaultTTR(time.Minute),
		)
		require.NoError(t, err)

		_, err = d.Push(context.Background(), rebuildIndex{})
		require.NoError(t, err)
		_, err = d.Push(context.Background(), rebuildIndex{},
			queue.WithQueue("search"),
			queue.WithName("search.rebuild"),
			queue.WithPriority(queue.PriorityHigh),
			queue.WithDelay(90*time.Second),
			queue.WithTTR(10*time.Minute),
		)
		require.NoError(t, err)
		require.Len(t, repo.tasks, 2)

		first, second := repo.tasks[0], repo.tasks[1]
		assert.Equal(t, "content", first.Queue)
		assert.Equal(t, queue.Priority(10), first.Priority)
		assert.Equal(t, time.Minute, first.TTR)

		assert.Equal(t, "search", second.Queue)
		assert.Equal(t, "search.rebuild", second.Name)
		assert.Equal(t, queue.PriorityHigh, second.Priority)
		assert.Equal(t, 10*time.Minute, second.TTR)
		assert.True(t, second.AvailableAt.Equal(fixedNow.Add(90*time.Second)))
		assert.True(t, second.CreatedAt.Equal(fixedNow))
	})

	t.Run("ignored options", func(t *testing.T) {
		t.Parallel()

		repo := &mockRepo{}
		d, err := queue.NewDispatcher(repo, queue.WithClock(clock), queue.WithDefaultPriority(-5))
		require.NoError(t, err)

		_, err = d.Push(context.Background(), rebuildIndex{},
			queue.WithQueue(""),
			queue.WithName(""),
			queue.WithDelay(-time.Hour),
			queue.WithTTR(0),
		)
		require.NoError(t, err)

		task := repo.tasks[0]
		assert.Equal(t, queue.DefaultQueueName, task.Queue)
		assert.Equal(t, queue.PriorityDefault, task.Priority)
		assert.Equal(t, queue.DefaultTTR, task.TTR)
		assert.True(t, task.AvailableAt.Equal(fixedNow))
	})

	t.Run("invalid priority", func(t *testing.T) {
		t.Parallel()

		repo := &mockRepo{}
		d, err := queue.NewDispatcher(repo)
		require.NoError(t, err)

		for _, p := range []queue.Priority{-1, queue.MaxPriority + 1} {
			id, err := d.Push(context.Background(), rebuildIndex{}, queue.WithPriority(p))
			assert.ErrorIs(t, err, queue.ErrInvalidPriority)
			assert.Equal(t, uuid.Nil, id)
		}
		assert.Empty(t, repo.tasks)
	})

	t.Run("nil job", func(t *testing.T) {
		t.Parallel()

		d, err := queue.NewDispatcher(&mockRepo{})
		require.NoError(t, err)
		_, err = d.Push(context.Background(), nil)
		assert.ErrorIs(t, err, queue.ErrJobNil)
	})

	t.Run("marshal failure", func(t *testing.T) {
		t.Parallel()

		repo := &mockRepo{}
		d, err := queue.NewDispatcher(repo)
		require.NoError(t, err)
		_, err = d.Push(context.Background(), unmarshalableJob{Ch: make(chan int)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal job")
		assert.Empty(t, repo.tasks)
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("storage down")
		d, err := queue.NewDispatcher(&mockRepo{
			createFunc: func(context.Context, *queue.Task) error { return boom },
		})
		require.NoError(t, err)

		id, err := d.Push(context.Background(), rebuildIndex{}, queue.WithQueue("search"))
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), `in queue "search"`)
		assert.Equal(t, uuid.Nil, id)
	})
}

func TestPriority_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, queue.PriorityHigh.Valid())
	assert.True(t, queue.PriorityDefault.Valid())
	assert.True(t, queue.MaxPriority.Valid())
	assert.False(t, queue.Priority(-1).Valid())
	assert.False(t, (queue.MaxPriority + 1).Valid())
}
