package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/bnema/fetchbot/config"
	HTTPAdapter "github.com/bnema/fetchbot/internal/adapter/http"
	"github.com/bnema/fetchbot/internal/adapter/storage/jsonfile"
	"github.com/bnema/fetchbot/internal/adapter/storage/localfs"
	sqlitestore "github.com/bnema/fetchbot/internal/adapter/storage/sqlite"
	"github.com/bnema/fetchbot/internal/adapter/telegram"
	"github.com/bnema/fetchbot/internal/adapter/ytdlp"
	"github.com/bnema/fetchbot/internal/infrastructure/logger"
	"github.com/bnema/fetchbot/internal/infrastructure/metrics"
	"github.com/bnema/fetchbot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error.Printf("failed to load config: %v", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	logger.Info.Printf("starting fetchbot, downloads=%s, max concurrent=%d", cfg.DownloadDir, cfg.MaxConcurrent)

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		logger.Error.Printf("failed to create data directory: %v", err)
		os.Exit(1)
	}

	files, err := localfs.NewStore(cfg.DownloadDir)
	if err != nil {
		logger.Error.Printf("failed to open download directory: %v", err)
		os.Exit(1)
	}

	history, err := sqlitestore.NewStore(cfg.DataDir)
	if err != nil {
		logger.Error.Printf("failed to create store: %v", err)
		os.Exit(1)
	}
	defer func() { _ = history.Close() }()

	actions, err := jsonfile.NewActionLog(cfg.ActionLogPath)
	if err != nil {
		logger.Error.Printf("failed to open action log: %v", err)
		os.Exit(1)
	}
	defer func() { _ = actions.Close() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	bot, err := telegram.New(cfg.BotToken)
	if err != nil {
		logger.Error.Printf("failed to connect to telegram: %v", err)
		os.Exit(1)
	}

	admission := service.NewAdmission(cfg.MaxConcurrent, m)
	registry := service.NewRegistry()
	eventBus := service.NewEventBus()

	runner := service.NewRunner(ytdlp.NewLauncher(cfg.YtDlpPath), files, admission, registry)
	pipeline := service.NewPipeline(runner, admission, files, bot, history, m, eventBus, service.PipelineConfig{
		AllowList: cfg.SupportedDomains,
	})

	housekeeper, err := service.NewHousekeeper(files, m, cfg.CleanupSchedule)
	if err != nil {
		logger.Error.Printf("invalid cleanup schedule: %v", err)
		os.Exit(1)
	}

	dispatcher := service.NewDispatcher(pipeline, registry, housekeeper, bot, actions, m, cfg.SupportedDomains)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := housekeeper.Start(ctx); err != nil {
		logger.Error.Printf("failed to start housekeeping: %v", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup

	if cfg.AdminEnabled() {
		server := HTTPAdapter.NewServer(HTTPAdapter.ServerDeps{
			Auth:        service.NewAdminAuth(cfg.AdminUser, cfg.AdminPasswordHash),
			Capacity:    admission,
			History:     history,
			Events:      eventBus,
			Gatherer:    reg,
			BehindProxy: cfg.AdminBehindProxy,
		})
		defer server.Close()

		httpServer := &http.Server{
			Addr:              cfg.AdminAddr,
			Handler:           server,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info.Printf("admin server listening on %s", cfg.AdminAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error.Printf("admin server failed: %v", err)
				stop()
			}
		}()

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer shutdownCancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error.Printf("http shutdown error: %v", err)
			}
		}()
	}

	// Blocks until the signal arrives and every in-flight message handler
	// has returned.
	if err := bot.Run(ctx, dispatcher.Dispatch); err != nil {
		logger.Error.Printf("bot stopped: %v", err)
	}
	logger.Info.Printf("received shutdown signal, waiting for admin server")
	wg.Wait()
	logger.Info.Printf("shutdown complete")
}
