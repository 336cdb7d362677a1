package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named function the scheduler drives on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler runs the background attendance jobs. Each job gets its own
// goroutine and ticker; Stop cancels the shared context and waits for every
// goroutine to drain before returning.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job. Jobs must be registered before Start; later
// additions are not picked up by a running scheduler.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:     name,
		Interval: interval,
		Fn:       fn,
	})
	slog.Info("Background job registered", "job", name, "interval", interval)
}

// Start launches one goroutine per registered job. Each job fires once
// immediately, then on every tick.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(job)
	}

	slog.Info("Job scheduler started", "jobs", len(s.jobs))
}

// Stop cancels all running jobs and blocks until they have exited.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Job scheduler stopped")
}

func (s *Scheduler) loop(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.executeJob(s.ctx, job)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Background job stopping", "job", job.Name)
			return
		case <-ticker.C:
			s.executeJob(s.ctx, job)
		}
	}
}

// executeJob runs a single job, logging the outcome. A panicking job is
// recovered here so it cannot take down its scheduler goroutine; it will run
// again on the next tick.
func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			slog.Error("Background job panicked", "job", job.Name, "panic", p, "duration", time.Since(start))
		}
	}()

	if err := job.Fn(ctx); err != nil {
		slog.Error("Background job failed", "job", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Background job finished", "job", job.Name, "duration", time.Since(start))
}

// RunOnce executes every registered job a single time on the caller's
// goroutine, in registration order. A failing or panicking job does not stop
// the rest of the batch.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.executeJob(ctx, job)
	}
}
