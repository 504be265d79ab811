// Package queue dispatches background jobs to a persistent task queue.
//
// A job is any JSON-serializable value. Dispatcher.Push marshals it into a
// Task and hands the task to a Repository. Two repositories ship with the
// package: MemoryRepository for tests and local development, and
// RedisRepository which keeps task bodies in a hash and ready ordering in a
// sorted set.
//
// # Usage
//
//	type RebuildIndex struct {
//	    Site string `json:"site"`
//	}
//
//	func (RebuildIndex) Description() string { return "rebuild search index" }
//
//	client, err := queue.ConnectRedis(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	d, err := queue.NewDispatcher(queue.NewRedisRepository(client))
//	if err != nil {
//	    return err
//	}
//	id, err := d.Push(ctx, RebuildIndex{Site: "docs"},
//	    queue.WithQueue("search"),
//	    queue.WithDelay(30*time.Second),
//	)
//
// # Priority
//
// Lower numbers run first. PriorityDefault is 1024, PriorityHigh is 0.
// Tasks that become available at the same second are ordered by priority.
package queue
