// Package job runs the periodic maintenance loops behind the recruitment
// backend, such as purging expired refresh tokens and abandoned drafts.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type task struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

type Service struct {
	tasks []task
	wg    sync.WaitGroup
}

func NewService() *Service {
	return &Service{}
}

// RegisterJob queues a task that runs once when the service starts and then
// on every interval tick.
func (s *Service) RegisterJob(name string, interval time.Duration, run func(ctx context.Context) error) *Service {
	s.tasks = append(s.tasks, task{
		name:     name,
		interval: interval,
		run:      run,
	})

	return s
}

func (s *Service) Start(ctx context.Context) {
	for _, t := range s.tasks {
		s.wg.Add(1)

		go s.loop(ctx, t)
	}
}

// Stop blocks until every task loop has observed context cancellation.
func (s *Service) Stop() {
	s.wg.Wait()
}

func (s *Service) loop(ctx context.Context, t task) {
	defer s.wg.Done()

	l := slog.Default().With("job", t.name)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		if err := s.runOnce(ctx, t); err != nil {
			l.ErrorContext(ctx, "job failed", "error", err)
		} else {
			l.DebugContext(ctx, "job done")
		}

		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
		}
	}
}

// runOnce contains a task panic so one bad sweep does not take the whole
// process down.
func (s *Service) runOnce(ctx context.Context, t task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	return t.run(ctx)
}
