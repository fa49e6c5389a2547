package storage

import (
	"context"
	"fmt"

	"github.com/HoangNobi25/thuchi/internal/app/server/config"
	"github.com/HoangNobi25/thuchi/internal/domain/ledger"
	"github.com/HoangNobi25/thuchi/internal/infrastructure/storage/jsonfile"
	"github.com/HoangNobi25/thuchi/internal/infrastructure/storage/postgres"
	"github.com/HoangNobi25/thuchi/internal/infrastructure/storage/sqlite"

	"github.com/spf13/afero"
	"golang.org/x/exp/slog"
)

// New opens the record store selected by STORAGE_BACKEND.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (ledger.Repository, error) {
	log.Info("opening storage", "backend", cfg.Storage.Backend)

	switch cfg.Storage.Backend {
	case config.BackendJSON:
		return jsonfile.New(afero.NewOsFs(), cfg.Storage.DataFile, log)
	case config.BackendSQLite:
		return sqlite.New(ctx, cfg.Storage.SQLitePath, log)
	case config.BackendPostgres:
		return postgres.New(ctx, cfg.Storage.DatabaseURI, log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
