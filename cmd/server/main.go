package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HoangNobi25/thuchi/internal/app/server/api"
	"github.com/HoangNobi25/thuchi/internal/app/server/config"
	"github.com/HoangNobi25/thuchi/internal/domain/ledger"
	"github.com/HoangNobi25/thuchi/internal/infrastructure/export"
	"github.com/HoangNobi25/thuchi/internal/infrastructure/storage"
	"github.com/HoangNobi25/thuchi/internal/utils/logger"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// openStorage is replaced in tests.
var openStorage = storage.New

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, conf, log)
	stop()

	if err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// run serves until ctx is cancelled. The store is closed before run returns.
func run(ctx context.Context, conf *config.Config, log *slog.Logger) (err error) {
	repo, err := openStorage(ctx, conf, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close storage: %w", cerr))
		}
	}()

	service := ledger.NewService(repo, export.NewXLSX(), log)

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(service, conf, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server started", "address", conf.Server.RunAddress, "env", conf.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
