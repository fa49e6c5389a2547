package postgres

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/HoangNobi25/thuchi/internal/infrastructure/migration"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Storage struct {
	pool *pgxpool.Pool
	log  *slog.Logger
	now  func() time.Time
}

// New applies migrations and opens a connection pool to databaseURI.
func New(ctx context.Context, databaseURI string, log *slog.Logger) (*Storage, error) {
	mg := migration.NewMigration(migrations, "migrations", databaseURI, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	pool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &Storage{
		pool: pool,
		log:  log.With("component", "postgres_store"),
		now:  time.Now,
	}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
