// Package scheduler repeats a task on a fixed interval until the context is
// canceled. Used for the optional long-running digest loop; one-shot runs
// don't go through here.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task immediately and then once per interval. Task errors are
// logged, never fatal; the next tick still fires.
func Every(ctx context.Context, interval time.Duration, name string, log *slog.Logger, task Task) {
	t := time.NewTicker(interval)
	defer t.Stop()

	if err := task(ctx); err != nil {
		log.Error("task failed", "task", name, "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := task(ctx); err != nil {
				log.Error("task failed", "task", name, "error", err)
			}
		}
	}
}
