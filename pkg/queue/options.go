package queue

import (
	"log/slog"
	"time"
)

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*dispatcherOptions)

type dispatcherOptions struct {
	defaultQueue    string
	defaultPriority Priority
	defaultTTR      time.Duration
	logger          *slog.Logger
	now             func() time.Time
}

// WithDefaultQueue sets the queue used when Push gets no WithQueue option.
func WithDefaultQueue(queue string) DispatcherOption {
	return func(o *dispatcherOptions) {
		if queue != "" {
			o.defaultQueue = queue
		}
	}
}

// WithDefaultPriority sets the priority used when Push gets no WithPriority
// option. Invalid priorities are ignored.
func WithDefaultPriority(p Priority) DispatcherOption {
	return func(o *dispatcherOptions) {
		if p.Valid() {
			o.defaultPriority = p
		}
	}
}

// WithDefaultTTR sets the time-to-run used when Push gets no WithTTR option.
func WithDefaultTTR(ttr time.Duration) DispatcherOption {
	return func(o *dispatcherOptions) {
		if ttr > 0 {
			o.defaultTTR = ttr
		}
	}
}

// WithLogger enables debug logging of pushed tasks.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(o *dispatcherOptions) {
		o.logger = l
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) DispatcherOption {
	return func(o *dispatcherOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// PushOption configures a single Push call.
type PushOption func(*pushOptions)

type pushOptions struct {
	queue    string
	name     string
	priority Priority
	delay    time.Duration
	ttr      time.Duration
}

// WithQueue sets the target queue.
func WithQueue(queue string) PushOption {
	return func(o *pushOptions) {
		if queue != "" {
			o.queue = queue
		}
	}
}

// WithName overrides the task name, which defaults to the job's type name.
func WithName(name string) PushOption {
	return func(o *pushOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithPriority sets the task priority. Push rejects values outside
// [0, MaxPriority].
func WithPriority(p Priority) PushOption {
	return func(o *pushOptions) {
		o.priority = p
	}
}

// WithDelay postpones availability. Non-positive delays are ignored.
func WithDelay(d time.Duration) PushOption {
	return func(o *pushOptions) {
		if d > 0 {
			o.delay = d
		}
	}
}

// WithTTR sets the task time-to-run. Non-positive values are ignored.
func WithTTR(ttr time.Duration) PushOption {
	return func(o *pushOptions) {
		if ttr > 0 {
			o.ttr = ttr
		}
	}
}
