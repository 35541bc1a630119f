package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/destroyallsecrets/security-guard-autoreporter/api"
	"github.com/destroyallsecrets/security-guard-autoreporter/config"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/pipeline"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/rules"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/store"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/utils"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (env vars alone also work)")
	flag.Parse()

	logger := utils.NewLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Errorf("config: %v", err)
		os.Exit(1)
	}

	db, err := store.NewDB(cfg, logger)
	if err != nil {
		logger.Errorf("database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.ApplyMigrations(ctx, db, cfg.IsPostgres(), logger); err != nil {
		logger.Errorf("migrations: %v", err)
		os.Exit(1)
	}

	reports := store.NewReportLogStore(db, cfg.IsPostgres())
	server := api.NewServer(cfg, reports, pipeline.New(), logger)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("auto-reporter listening on %s (zone %s, rules %s)", cfg.ListenAddr, cfg.Zone, rules.Version)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("shutdown: %v", err)
		}
		logger.Printf("auto-reporter stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("serve: %v", err)
			os.Exit(1)
		}
	}
}
