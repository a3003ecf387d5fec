package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/svw-wertheim/spielbericht/internal/config"
)

// Scheduler periodically runs the league sync followed by the generation
// queue. Deployments that trigger both via cron over HTTP leave it
// disabled; the queue assumes a single invoker at a time.
type Scheduler struct {
	config            *config.SchedulerConfig
	logger            *zap.Logger
	syncService       *LeagueSyncService
	generationService *GenerationService
	ticker            *time.Ticker
	stopCh            chan struct{}
}

func NewScheduler(cfg *config.SchedulerConfig, logger *zap.Logger, syncService *LeagueSyncService, generationService *GenerationService) *Scheduler {
	return &Scheduler{
		config:            cfg,
		logger:            logger,
		syncService:       syncService,
		generationService: generationService,
		stopCh:            make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if !s.config.Enabled {
		s.logger.Info("Scheduler is disabled")
		return nil
	}

	interval, err := time.ParseDuration(s.config.SyncInterval)
	if err != nil {
		s.logger.Error("Invalid sync interval", zap.String("interval", s.config.SyncInterval), zap.Error(err))
		return err
	}

	s.logger.Info("Starting scheduler", zap.String("sync_interval", s.config.SyncInterval))

	s.ticker = time.NewTicker(interval)

	// Run first cycle immediately
	go func() {
		s.logger.Info("Running initial cycle")
		s.runCycle(ctx)
	}()

	// Start periodic cycles
	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.logger.Info("Running scheduled cycle")
				s.runCycle(ctx)
			case <-s.stopCh:
				s.logger.Info("Scheduler stopped")
				return
			case <-ctx.Done():
				s.logger.Info("Scheduler context cancelled")
				return
			}
		}
	}()

	return nil
}

func (s *Scheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.stopCh)
	s.logger.Info("Scheduler shutdown completed")
}

// runCycle syncs the league feed and then drains the generation queue. A
// sync failure does not block generation: pending entries from earlier
// syncs can still be processed.
func (s *Scheduler) runCycle(ctx context.Context) {
	start := time.Now()

	if err := s.syncService.Sync(); err != nil {
		s.logger.Error("League sync failed", zap.Error(err))
	}

	if err := s.generationService.ProcessPending(ctx); err != nil {
		s.logger.Error("Generation run failed", zap.Error(err))
	}

	s.logger.Info("Cycle completed", zap.Duration("duration", time.Since(start)))
}
