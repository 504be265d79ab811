package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/cmskit/pkg/logger"
)

// Repository persists tasks.
type Repository interface {
	CreateTask(ctx context.Context, task *Task) error
}

// Dispatcher turns jobs into tasks.
type Dispatcher struct {
	repo Repository
	opts dispatcherOptions
}

// NewDispatcher creates a Dispatcher backed by repo.
func NewDispatcher(repo Repository, opts ...DispatcherOption) (*Dispatcher, error) {
	if repo == nil {
		return nil, ErrRepositoryNil
	}

	o := dispatcherOptions{
		defaultQueue:    DefaultQueueName,
		defaultPriority: PriorityDefault,
		defaultTTR:      DefaultTTR,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Dispatcher{repo: repo, opts: o}, nil
}

// Push stores job as a new task and returns its id.
func (d *Dispatcher) Push(ctx context.Context, job any, opts ...PushOption) (uuid.UUID, error) {
	if job == nil {
		return uuid.Nil, ErrJobNil
	}

	o := pushOptions{
		queue:    d.opts.defaultQueue,
		priority: d.opts.defaultPriority,
		ttr:      d.opts.defaultTTR,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.priority.Valid() {
		return uuid.Nil, fmt.Errorf("%w: got %d", ErrInvalidPriority, o.priority)
	}

	task, err := d.buildTask(job, o)
	if err != nil {
		return uuid.Nil, err
	}

	if err := d.repo.CreateTask(ctx, task); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create task %q in queue %q: %w", task.Name, task.Queue, err)
	}

	if d.opts.logger != nil {
		d.opts.logger.DebugContext(ctx, "task pushed",
			logger.Queue(task.Queue),
			logger.JobID(task.ID),
			slog.String("name", task.Name),
			slog.Int("priority", int(task.Priority)),
			slog.Time("available_at", task.AvailableAt),
		)
	}

	return task.ID, nil
}

func (d *Dispatcher) buildTask(job any, o pushOptions) (*Task, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job of type %T: %w", job, err)
	}

	name := o.name
	if name == "" {
		name = qualifiedStructName(job)
	}

	var description string
	if desc, ok := job.(Describer); ok {
		description = desc.Description()
	}

	now := d.opts.now()
	return &Task{
		ID:          uuid.New(),
		Queue:       o.queue,
		Name:        name,
		Description: description,
		Payload:     payload,
		Priority:    o.priority,
		TTR:         o.ttr,
		AvailableAt: now.Add(o.delay),
		CreatedAt:   now,
	}, nil
}
