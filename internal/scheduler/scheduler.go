// Package scheduler runs periodic jobs on a single ticker goroutine.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/carealert-backend/internal/metrics"
)

// Job is one unit of periodic work. Run receives the tick time.
type Job struct {
	Name string
	Run  func(ctx context.Context, now time.Time) error
}

// Scheduler runs its jobs sequentially on every tick. Ticks never overlap:
// a tick that outlasts the interval skips the boundaries it missed.
type Scheduler struct {
	jobs     []Job
	interval time.Duration
	now      func() time.Time
	log      *slog.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a Scheduler. It does nothing until Start is called.
func New(logger *slog.Logger, interval time.Duration, jobs ...Job) *Scheduler {
	return &Scheduler{
		jobs:     jobs,
		interval: interval,
		now:      time.Now,
		log:      logger.With("service", "scheduler"),
	}
}

// Start runs the first tick immediately and then one at every interval
// boundary of the clock (each whole minute for a one-minute interval) until
// ctx is cancelled or Stop is called. Calling Start twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	s.log.InfoContext(ctx, "scheduler started",
		slog.Duration("interval", s.interval),
		slog.Int("jobs", len(s.jobs)),
	)

	go s.loop(ctx)
}

// Stop cancels the loop and waits for a running tick to finish. It is safe
// to call more than once and before Start.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		cancel, done := s.cancel, s.done
		s.mu.Unlock()

		if cancel == nil {
			return
		}
		cancel()
		<-done
		s.log.Info("scheduler stopped")
	})
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	last := s.now()
	s.tick(ctx, last)

	for {
		next := s.nextTick(last)
		timer := time.NewTimer(next.Sub(s.now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			last = next
			s.tick(ctx, next)
		}
	}
}

// nextTick returns the first interval boundary after both the previous tick
// and the current time. Ticks land on the boundary rather than drifting by
// the start phase or a slow tick, and a tick that overran is not replayed.
func (s *Scheduler) nextTick(last time.Time) time.Time {
	from := s.now()
	if last.After(from) {
		from = last
	}
	return from.Truncate(s.interval).Add(s.interval)
}

func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	for _, job := range s.jobs {
		if ctx.Err() != nil {
			return
		}
		s.runJob(ctx, job, now)
	}
}

// runJob isolates one job: errors and panics are logged and counted.
func (s *Scheduler) runJob(ctx context.Context, job Job, now time.Time) {
	start := time.Now()
	defer func() {
		metrics.ObserveTick(job.Name, time.Since(start))
	}()

	err := safeRun(ctx, job, now)
	if err != nil {
		metrics.JobFailed(job.Name)
		s.log.ErrorContext(ctx, "scheduled job failed",
			slog.String("job", job.Name),
			slog.String("error", err.Error()),
		)
	}
}

func safeRun(ctx context.Context, job Job, now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return job.Run(ctx, now)
}
