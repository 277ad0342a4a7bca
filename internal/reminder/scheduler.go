package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"appointment-reminder-go/internal/config"
	"appointment-reminder-go/internal/metrics"
	"appointment-reminder-go/internal/model"
)

// Scheduler drives the periodic reminder processing. Each tick independently
// re-scans the store for due appointments; the eligibility windows are wide
// enough that an appointment stays due across several ticks.
type Scheduler struct {
	cron      *cron.Cron
	entryID   cron.EntryID
	config    *config.SchedulerConfig
	processor *Processor
	metrics   *metrics.Metrics
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	isRunning bool
	mu        sync.RWMutex
}

// NewScheduler creates a new scheduler
func NewScheduler(cfg *config.SchedulerConfig, processor *Processor, m *metrics.Metrics) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		config:    cfg,
		processor: processor,
		metrics:   m,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	// Recreate the context if a previous Stop cancelled it
	if s.ctx.Err() != nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
	}

	// Schedule the job to run every N minutes
	schedule := fmt.Sprintf("0 */%d * * * *", s.config.IntervalMinutes)

	entryID, err := s.cron.AddFunc(schedule, s.processCycle)
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.entryID = entryID
	s.cron.Start()
	s.isRunning = true

	logrus.Infof("Reminder scheduler started with interval: %d minutes", s.config.IntervalMinutes)
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	// Cancel context to stop any running operations
	s.cancel()

	// Stop the cron scheduler
	ctx := s.cron.Stop()

	// Wait for all jobs to complete
	select {
	case <-ctx.Done():
		logrus.Info("Reminder scheduler stopped gracefully")
	case <-time.After(30 * time.Second):
		logrus.Warn("Reminder scheduler stop timeout, forcing shutdown")
	}

	s.cron.Remove(s.entryID)
	s.isRunning = false
	return nil
}

// IsRunning returns whether the scheduler is running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// processCycle is the main processing function that runs periodically
func (s *Scheduler) processCycle() {
	s.wg.Add(1)
	defer s.wg.Done()

	s.mu.RLock()
	if !s.isRunning {
		s.mu.RUnlock()
		logrus.Info("Scheduler not running, skipping processing cycle")
		return
	}
	ctx := s.ctx
	s.mu.RUnlock()

	startTime := time.Now()
	if s.metrics != nil {
		s.metrics.CycleCount.Inc()
	}

	s.processor.ProcessAll(ctx)

	duration := time.Since(startTime)
	if s.metrics != nil {
		s.metrics.ProcessingTime.Observe(duration.Seconds())
	}
	logrus.Infof("Reminder processing cycle completed in %v", duration)
}

// RunOnce runs the reminder processing once (for manual triggering) and
// returns the per-kind results.
func (s *Scheduler) RunOnce(ctx context.Context) map[model.ReminderKind]model.ReminderBatchResult {
	logrus.Info("Running reminder processing once")

	if s.metrics != nil {
		s.metrics.CycleCount.Inc()
	}
	startTime := time.Now()
	results := s.processor.ProcessAll(ctx)
	if s.metrics != nil {
		s.metrics.ProcessingTime.Observe(time.Since(startTime).Seconds())
	}
	return results
}

// GetNextRun returns the time of the next scheduled run
func (s *Scheduler) GetNextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// GetLastRun returns the time of the last run
func (s *Scheduler) GetLastRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Prev
}

// Wait waits for in-flight processing to finish
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
