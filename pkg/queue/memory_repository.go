package queue

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps tasks in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*Task
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tasks: make(map[uuid.UUID]*Task)}
}

// CreateTask implements Repository.
func (m *MemoryRepository) CreateTask(ctx context.Context, task *Task) error {
	if task == nil {
		return ErrTaskNil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.tasks[task.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTask, task.ID)
	}
	cp := *task
	m.tasks[task.ID] = &cp
	return nil
}

// GetTask returns a copy of the task with id.
func (m *MemoryRepository) GetTask(_ context.Context, id uuid.UUID) (*Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	cp := *task
	return &cp, nil
}

// Ready returns up to limit tasks of queue available at now, in run order.
// A non-positive limit returns all of them.
func (m *MemoryRepository) Ready(_ context.Context, queue string, now time.Time, limit int) ([]*Task, error) {
	m.mu.RLock()
	ready := make([]*Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		if task.Queue == queue && task.Ready(now) {
			cp := *task
			ready = append(ready, &cp)
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(ready, compareTasks)
	if limit > 0 && len(ready) > limit {
		ready = ready[:limit]
	}
	return ready, nil
}

// Len returns the number of stored tasks.
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tasks)
}

// compareTasks orders by availability second, then priority, then id.
// It matches the sorted set order used by RedisRepository.
func compareTasks(a, b *Task) int {
	return cmp.Or(
		cmp.Compare(a.AvailableAt.Unix(), b.AvailableAt.Unix()),
		cmp.Compare(a.Priority, b.Priority),
		cmp.Compare(a.ID.String(), b.ID.String()),
	)
}
