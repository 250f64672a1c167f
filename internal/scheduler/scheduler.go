package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is one unit of scheduled work.
type Job func(ctx context.Context) error

type registration struct {
	interval time.Duration
	cancel   context.CancelFunc
}

// Scheduler runs jobs on fixed intervals, keyed by stable string identifiers.
// Registering a known key replaces its job rather than duplicating it. An
// interval firing is skipped while the previous run for the same key is still
// executing; one-shot submissions bypass that guard and may overlap.
type Scheduler struct {
	logger *slog.Logger

	mu   sync.Mutex
	ctx  context.Context
	jobs map[string]*registration

	runMu   sync.Mutex
	running map[string]bool

	wg sync.WaitGroup
}

func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		logger:  logger,
		jobs:    make(map[string]*registration),
		running: make(map[string]bool),
	}
}

// Start arms the scheduler. Jobs registered before Start fire once it runs;
// ctx cancellation stops every job loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = ctx
	s.logger.Info("scheduler started", "jobs", len(s.jobs))
}

// Stop waits for in-flight jobs to finish, up to ctx's deadline.
func (s *Scheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	for key, reg := range s.jobs {
		reg.cancel()
		delete(s.jobs, key)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.logger.Info("scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("scheduler stopped with jobs still running")
	}
}

// Register arms an interval job under key, replacing any existing
// registration for the same key.
func (s *Scheduler) Register(key string, interval time.Duration, job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.jobs[key]; ok {
		old.cancel()
	}

	parent := s.ctx
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	s.jobs[key] = &registration{interval: interval, cancel: cancel}

	s.wg.Add(1)
	go s.runLoop(ctx, key, interval, job)

	s.logger.Info("job registered", "job", key, "interval", interval)
}

// Remove disarms the interval job under key. Unknown keys are a no-op.
func (s *Scheduler) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reg, ok := s.jobs[key]; ok {
		reg.cancel()
		delete(s.jobs, key)
		s.logger.Info("job removed", "job", key)
	}
}

// RunNow submits a one-shot job. It runs independently of any interval
// registration under the same name and may overlap with it.
func (s *Scheduler) RunNow(key string, job Job) {
	parent := s.ctx
	if parent == nil {
		parent = context.Background()
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Info("one-shot job starting", "job", key)
		if err := job(parent); err != nil {
			s.logger.Error("one-shot job failed", "job", key, "error", err)
			return
		}
		s.logger.Info("one-shot job finished", "job", key)
	}()
}

func (s *Scheduler) runLoop(ctx context.Context, key string, interval time.Duration, job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fire(ctx, key, job)
		}
	}
}

func (s *Scheduler) fire(ctx context.Context, key string, job Job) {
	if !s.tryAcquire(key) {
		s.logger.Warn("previous run still in progress, skipping", "job", key)
		return
	}
	defer s.release(key)

	if err := job(ctx); err != nil {
		s.logger.Error("job failed", "job", key, "error", err)
		return
	}
	s.logger.Debug("job finished", "job", key)
}

func (s *Scheduler) tryAcquire(key string) bool {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.running[key] {
		return false
	}
	s.running[key] = true
	return true
}

func (s *Scheduler) release(key string) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	delete(s.running, key)
}
