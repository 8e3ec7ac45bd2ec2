package services

import (
	"context"
	"sync"
	"time"

	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

// BackgroundRunner executes best-effort work detached from the request that
// spawned it: the caller's response is already in flight when the task runs,
// task errors are logged and swallowed, and Wait lets shutdown drain
// in-flight tasks instead of racing process exit.
type BackgroundRunner struct {
	log     *logger.Logger
	wg      sync.WaitGroup
	timeout time.Duration
}

func NewBackgroundRunner(log *logger.Logger) *BackgroundRunner {
	return &BackgroundRunner{
		log:     log.With("service", "BackgroundRunner"),
		timeout: 30 * time.Second,
	}
}

// Go runs fn on its own goroutine with a fresh context, so cancellation of
// the originating request does not abort the write.
func (r *BackgroundRunner) Go(name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.log.Error("background task panicked", "task", name, "panic", rec)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			r.log.Warn("background task failed", "task", name, "error", err)
		}
	}()
}

func (r *BackgroundRunner) Wait() {
	r.wg.Wait()
}
