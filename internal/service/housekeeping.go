package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/bnema/fetchbot/internal/infrastructure/logger"
	"github.com/bnema/fetchbot/internal/port"
)

// DefaultCleanupSchedule runs the sweep once a day at midnight.
const DefaultCleanupSchedule = "0 0 * * *"

// Housekeeper purges the download directory on a cron schedule and on
// demand. Sweeps never overlap.
type Housekeeper struct {
	files    port.FileStore
	metrics  port.Metrics
	schedule string
	cron     *cron.Cron
	mu       sync.Mutex
}

func NewHousekeeper(files port.FileStore, metrics port.Metrics, schedule string) (*Housekeeper, error) {
	if schedule == "" {
		schedule = DefaultCleanupSchedule
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", schedule, err)
	}
	return &Housekeeper{
		files:    files,
		metrics:  metrics,
		schedule: schedule,
	}, nil
}

// Start registers the scheduled sweep and runs the scheduler until ctx is
// cancelled.
func (h *Housekeeper) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(h.schedule, func() {
		if _, err := h.Sweep(); err != nil {
			logger.Error.Printf("scheduled sweep: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}
	h.cron = c
	c.Start()
	logger.Info.Printf("cleanup scheduled: %s", h.schedule)

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		logger.Info.Printf("cleanup scheduler stopped")
	}()
	return nil
}

// Sweep deletes every top-level file in the download directory, including
// finished files still waiting to be sent.
func (h *Housekeeper) Sweep() (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	removed, err := h.files.Purge()
	if h.metrics != nil {
		h.metrics.RecordSweep(removed, err)
	}
	if err != nil {
		logger.Warn.Printf("sweep removed %d files with errors: %v", removed, err)
		return removed, err
	}
	logger.Info.Printf("sweep removed %d files", removed)
	return removed, nil
}
