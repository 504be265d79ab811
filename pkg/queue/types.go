package queue

import (
	"time"

	"github.com/google/uuid"
)

// DefaultQueueName is used when no queue is specified.
const DefaultQueueName = "default"

// DefaultTTR is the time a worker may hold a task before it is released.
const DefaultTTR = 5 * time.Minute

// Priority orders ready tasks. Lower values run first.
type Priority int32

const (
	PriorityHigh    Priority = 0
	PriorityDefault Priority = 1024
	PriorityLow     Priority = 2048
	// MaxPriority keeps the redis sorted set score exact.
	MaxPriority Priority = 999_999
)

// Valid reports whether p is within [0, MaxPriority].
func (p Priority) Valid() bool {
	return p >= 0 && p <= MaxPriority
}

// Describer is implemented by jobs that carry a human readable description.
type Describer interface {
	Description() string
}

// Task is a persisted job.
type Task struct {
	ID          uuid.UUID     `json:"id"`
	Queue       string        `json:"queue"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Payload     []byte        `json:"payload,omitempty"`
	Priority    Priority      `json:"priority"`
	TTR         time.Duration `json:"ttr"`
	AvailableAt time.Time     `json:"available_at"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Ready reports whether the task may be picked up at now.
func (t *Task) Ready(now time.Time) bool {
	return !t.AvailableAt.After(now)
}
