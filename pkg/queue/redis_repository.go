package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces queue keys.
const DefaultRedisPrefix = "cmskit:queue"

// RedisRepository stores tasks as JSON in a per-queue hash and tracks run
// order in a per-queue sorted set.
type RedisRepository struct {
	client redis.UniversalClient
	prefix string
}

// RedisOption configures a RedisRepository.
type RedisOption func(*RedisRepository)

// WithKeyPrefix replaces DefaultRedisPrefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *RedisRepository) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// NewRedisRepository creates a RedisRepository on client.
func NewRedisRepository(client redis.UniversalClient, opts ...RedisOption) *RedisRepository {
	r := &RedisRepository{client: client, prefix: DefaultRedisPrefix}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RedisRepository) tasksKey(queue string) string {
	return r.prefix + ":" + queue + ":tasks"
}

func (r *RedisRepository) readyKey(queue string) string {
	return r.prefix + ":" + queue + ":ready"
}

// score packs availability second and priority into one exact float.
func score(availableAt time.Time, p Priority) float64 {
	return float64(availableAt.Unix()*1_000_000 + int64(p))
}

// CreateTask implements Repository.
func (r *RedisRepository) CreateTask(ctx context.Context, task *Task) error {
	if task == nil {
		return ErrTaskNil
	}
	if !task.Priority.Valid() {
		return ErrInvalidPriority
	}

	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to encode task %s: %w", task.ID, err)
	}

	id := task.ID.String()
	created, err := r.client.HSetNX(ctx, r.tasksKey(task.Queue), id, body).Result()
	if err != nil {
		return fmt.Errorf("failed to store task %s: %w", id, err)
	}
	if !created {
		return fmt.Errorf("%w: %s", ErrDuplicateTask, id)
	}

	member := redis.Z{Score: score(task.AvailableAt, task.Priority), Member: id}
	if err := r.client.ZAdd(ctx, r.readyKey(task.Queue), member).Err(); err != nil {
		_ = r.client.HDel(ctx, r.tasksKey(task.Queue), id).Err()
		return fmt.Errorf("failed to index task %s: %w", id, err)
	}
	return nil
}

// GetTask loads a task from queue.
func (r *RedisRepository) GetTask(ctx context.Context, queue string, id uuid.UUID) (*Task, error) {
	body, err := r.client.HGet(ctx, r.tasksKey(queue), id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task %s: %w", id, err)
	}
	return decodeTask(body)
}

// Ready returns up to limit tasks of queue available at now, in run order.
// A non-positive limit returns all of them.
func (r *RedisRepository) Ready(ctx context.Context, queue string, now time.Time, limit int) ([]*Task, error) {
	by := &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.Unix()*1_000_000+int64(MaxPriority), 10),
	}
	if limit > 0 {
		by.Count = int64(limit)
	}

	ids, err := r.client.ZRangeByScore(ctx, r.readyKey(queue), by).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list ready tasks in %q: %w", queue, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	bodies, err := r.client.HMGet(ctx, r.tasksKey(queue), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load ready tasks in %q: %w", queue, err)
	}

	tasks := make([]*Task, 0, len(bodies))
	for _, raw := range bodies {
		s, ok := raw.(string)
		if !ok {
			// index entry without a body
			continue
		}
		task, err := decodeTask([]byte(s))
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Len returns the number of tasks indexed in queue.
func (r *RedisRepository) Len(ctx context.Context, queue string) (int64, error) {
	return r.client.ZCard(ctx, r.readyKey(queue)).Result()
}

func decodeTask(body []byte) (*Task, error) {
	var task Task
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, fmt.Errorf("failed to decode task: %w", err)
	}
	return &task, nil
}
