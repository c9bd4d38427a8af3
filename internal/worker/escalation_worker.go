package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/spec-kit/support-bot/internal/config"
	"github.com/spec-kit/support-bot/internal/service"
)

// EscalationMonitor periodically promotes stale open tickets. Scans run on a
// cron schedule derived from the configured interval; a scan that panics is
// logged and the schedule keeps running.
type EscalationMonitor struct {
	support *service.SupportService
	cfg     config.EscalationConfig
	logger  *zap.Logger
	cron    *cron.Cron
}

// NewEscalationMonitor builds the monitor.
func NewEscalationMonitor(support *service.SupportService, cfg config.EscalationConfig, logger *zap.Logger) *EscalationMonitor {
	return &EscalationMonitor{
		support: support,
		cfg:     cfg,
		logger:  logger,
		cron:    cron.New(),
	}
}

// Start schedules the scan and blocks until ctx is cancelled.
func (m *EscalationMonitor) Start(ctx context.Context) error {
	spec := "@every " + m.cfg.Interval().String()
	_, err := m.cron.AddFunc(spec, func() {
		m.runScan(ctx)
	})
	if err != nil {
		return err
	}

	m.cron.Start()
	m.logger.Info("escalation monitor started",
		zap.Duration("interval", m.cfg.Interval()),
		zap.Duration("max_age", m.cfg.MaxAge()))

	<-ctx.Done()
	stopCtx := m.cron.Stop()
	<-stopCtx.Done()
	m.logger.Info("escalation monitor stopped")
	return nil
}

func (m *EscalationMonitor) runScan(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("escalation scan panicked", zap.Any("panic", r))
		}
	}()

	escalated := m.support.EscalateDueTickets(ctx, time.Now(), m.cfg.MaxAge())
	if len(escalated) > 0 {
		m.logger.Warn("tickets escalated", zap.Int("count", len(escalated)))
	}
}
