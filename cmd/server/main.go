package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/netutil"

	httpadapter "blacklist/internal/adapters/http"
	"blacklist/internal/adapters/memory"
	"blacklist/internal/adapters/ocr"
	pg "blacklist/internal/adapters/postgres"
	"blacklist/internal/config"
	"blacklist/internal/logger"
	"blacklist/internal/metrics"
	"blacklist/internal/ports"
	"blacklist/internal/riskscore"
	casesvc "blacklist/internal/services/cases"
	compsvc "blacklist/internal/services/companies"
	overviewsvc "blacklist/internal/services/overview"
	usersvc "blacklist/internal/services/users"
	"blacklist/internal/workers/backlog"
)

// store is everything the services need from persistence.
type store interface {
	ports.CaseRepository
	ports.CompanyRepository
	ports.UserRepository
}

func main() {
	cfg, cfgErr := config.Load()
	log := logger.New("blacklist", cfg.LogLevel)
	if cfgErr != nil {
		log.Warnf("config: %v", cfgErr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var repo store
	switch {
	case cfg.DatabaseURL != "":
		if cfg.MigrateOnStart {
			if err := pg.Migrate(ctx, cfg.DatabaseURL, log); err != nil {
				log.Fatalf("migrate: %v", err)
			}
		}
		db, err := pg.Connect(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
		if err != nil {
			log.Fatalf("db connect error: %v", err)
		}
		defer db.Close()
		repo = db
	case cfg.Development():
		log.Warn("DATABASE_URL not set; using in-memory storage")
		repo = memory.New()
	default:
		log.Fatal("DATABASE_URL is required outside development")
	}

	riskCfg, err := riskscore.LoadConfig(cfg.RiskConfigPath)
	if err != nil {
		log.Fatalf("risk config: %v", err)
	}
	scorer, err := riskscore.New(riskCfg)
	if err != nil {
		log.Fatalf("risk scorer: %v", err)
	}
	if cfg.OCRURL == "" {
		log.Info("OCR_URL not set; text extraction disabled")
	}
	extractor := ocr.New(cfg.OCRURL, cfg.OCRLanguage, cfg.OCRTimeout)

	m := metrics.New("blacklist")
	companies := compsvc.New(repo, log)
	srv := httpadapter.New(
		casesvc.New(repo, scorer, extractor, log, m),
		usersvc.New(repo, companies, log),
		companies,
		overviewsvc.New(repo),
		log, m,
		httpadapter.Options{MaxUploadBytes: cfg.OCRMaxBytes},
	)

	go backlog.Run(ctx, repo, m, cfg.BacklogInterval, log)

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	if cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConnections)
	}
	httpSrv := &http.Server{
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.Serve(ln) }()
	log.WithField("addr", cfg.ListenAddr).Info("listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Infof("shutting down on %s", sig)
		cancel()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown")
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}
}
