package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YusovID/defect-tracker/internal/config"
	"github.com/YusovID/defect-tracker/internal/repository/postgres"
	"github.com/YusovID/defect-tracker/internal/service"
	myhttp "github.com/YusovID/defect-tracker/internal/transport/http"

	"github.com/YusovID/defect-tracker/pkg/logger/sl"
	"github.com/YusovID/defect-tracker/pkg/logger/slogpretty"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx)
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.MustLoad()
	log := slogpretty.SetupLogger(cfg.Env)

	log.Info("starting defect-tracker", slog.String("env", cfg.Env))

	db, err := postgres.NewDB(ctx, cfg.Postgres, log)
	if err != nil {
		return fmt.Errorf("failed to init db: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("db close failed", sl.Err(err))
		}
	}()

	defectRepo := postgres.NewDefectRepository(db.DB(), log)
	userRepo := postgres.NewUserRepository(db.DB(), log)
	commentRepo := postgres.NewCommentRepository(db.DB(), log)
	attachmentRepo := postgres.NewAttachmentRepository(db.DB(), log)
	historyRepo := postgres.NewStatusChangeRepository(db.DB(), log)
	defectCache := service.NewDefectCache(cfg.Cache.Size, cfg.Cache.TTL)

	srv := myhttp.NewServer(
		log,
		service.NewDefectService(db.DB(), log, defectRepo, historyRepo, defectCache),
		service.NewUserService(log, userRepo),
		service.NewCommentService(db.DB(), log, defectRepo, commentRepo),
		service.NewAttachmentService(db.DB(), log, defectRepo, attachmentRepo),
	)

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errChan := make(chan error, 1)

	go startServer(log, httpServer, errChan)

	select {
	case err := <-errChan:
		return fmt.Errorf("http server error: %w", err)

	case <-ctx.Done():
		log.Info("stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}

	log.Info("server stopped")

	return nil
}

func startServer(log *slog.Logger, httpServer *http.Server, errChan chan<- error) {
	log.Info("service started", slog.String("addr", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errChan <- fmt.Errorf("error listening and serving: %w", err)
	}
}
