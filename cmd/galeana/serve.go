package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"galeana-pepper/cmd/config"
	migration "galeana-pepper/cmd/database/migrate"
	"galeana-pepper/internal/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	migrateOnStart  bool
	shutdownTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Run migrations before serving")
	serveCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "Grace period for in-flight requests")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDB(ctx, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if migrateOnStart {
		if err := migration.Migrate(ctx, db, logger); err != nil {
			return err
		}
	}

	app, cleanup, err := config.NewApp(ctx, db, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	addr := net.JoinHostPort("", utils.GetConfig("APP_PORT"))
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	// open tank streams would otherwise hold the shutdown until the timeout
	cleanup()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
