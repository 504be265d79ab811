package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cmskit/pkg/config"
	"github.com/dmitrymomot/cmskit/pkg/jsonutil"
	"github.com/dmitrymomot/cmskit/pkg/logger"
	"github.com/dmitrymomot/cmskit/pkg/queue"
)

func newPushCmd(a *app) *cobra.Command {
	var (
		redisURL string
		queueArg string
		priority int
		delay    time.Duration
		ttr      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "push <name> [json-payload]",
		Short: "Push a job onto the Redis task queue",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := json.RawMessage("{}")
			if len(args) == 2 {
				var probe any
				if err := jsonutil.Decode([]byte(args[1]), &probe); err != nil {
					return err
				}
				payload = json.RawMessage(args[1])
			}

			var cfg queue.RedisConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if redisURL != "" {
				cfg.ConnectionURL = redisURL
			}

			ctx := cmd.Context()
			client, err := queue.ConnectRedis(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			d, err := queue.NewDispatcher(queue.NewRedisRepository(client),
				queue.WithLogger(a.logger.With(logger.Component("queue"))),
			)
			if err != nil {
				return err
			}

			opts := []queue.PushOption{
				queue.WithName(args[0]),
				queue.WithQueue(queueArg),
				queue.WithDelay(delay),
				queue.WithTTR(ttr),
			}
			if cmd.Flags().Changed("priority") {
				opts = append(opts, queue.WithPriority(queue.Priority(priority)))
			}

			id, err := d.Push(ctx, payload, opts...)
			if err != nil {
				return err
			}
			a.logger.InfoContext(ctx, "job pushed", logger.JobID(id), slog.String("name", args[0]))
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&redisURL, "redis-url", "", "redis connection url, overrides REDIS_URL")
	cmd.Flags().StringVar(&queueArg, "queue", queue.DefaultQueueName, "target queue")
	cmd.Flags().IntVar(&priority, "priority", int(queue.PriorityDefault), "task priority, lower runs first")
	cmd.Flags().DurationVar(&delay, "delay", 0, "delay before the task becomes available")
	cmd.Flags().DurationVar(&ttr, "ttr", queue.DefaultTTR, "time to run")
	return cmd
}
