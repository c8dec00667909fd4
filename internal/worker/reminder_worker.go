package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/spec-kit/schedule-service/internal/service"
)

// Sweeper runs one reminder pass.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// ReminderWorker runs the pending-assignment reminder sweep on a cron schedule.
type ReminderWorker struct {
	cron    *cron.Cron
	sweeper Sweeper
	logger  *zap.Logger
	timeout time.Duration
}

// NewReminderWorker schedules sweeper with spec, a standard five-field cron expression.
func NewReminderWorker(spec string, sweeper Sweeper, logger *zap.Logger) (*ReminderWorker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &ReminderWorker{
		cron:    cron.New(),
		sweeper: sweeper,
		logger:  logger,
		timeout: time.Minute,
	}
	if _, err := w.cron.AddFunc(spec, w.run); err != nil {
		return nil, err
	}
	return w, nil
}

// Start starts the scheduler.
func (w *ReminderWorker) Start() {
	w.cron.Start()
	w.logger.Info("reminder worker started", zap.Int("jobs", len(w.cron.Entries())))
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (w *ReminderWorker) Stop() {
	<-w.cron.Stop().Done()
	w.logger.Info("reminder worker stopped")
}

func (w *ReminderWorker) run() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	sent, err := w.sweeper.Sweep(ctx)
	if err != nil {
		w.logger.Error("reminder sweep failed", zap.Error(err))
		return
	}
	w.logger.Info("reminder sweep finished", zap.Int("reminders", sent))
}

var _ Sweeper = (*service.ReminderService)(nil)
