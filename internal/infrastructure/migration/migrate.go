package migration

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	// Драйверы БД регистрируются через blank import
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator — интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine — фабрика для создания мигратора (чтобы не лезть в БД в тестах)
type MigrationEngine func(src source.Driver, databaseURL string) (Migrator, error)

// DefaultEngine — реальная реализация для продакшена
func DefaultEngine(src source.Driver, databaseURL string) (Migrator, error) {
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

// Migration применяет встроенные SQL миграции из fsys/dir к databaseURL
// (sqlite3://path или postgres://...).
type Migration struct {
	fsys        fs.FS
	dir         string
	databaseURL string
	engine      MigrationEngine
}

func NewMigration(fsys fs.FS, dir, databaseURL string, engine MigrationEngine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		fsys:        fsys,
		dir:         dir,
		databaseURL: databaseURL,
		engine:      engine,
	}
}

func (mg *Migration) Up() (err error) {
	src, err := iofs.New(mg.fsys, mg.dir)
	if err != nil {
		return fmt.Errorf("open migrations %q: %w", mg.dir, err)
	}

	m, err := mg.engine(src, mg.databaseURL)
	if err != nil {
		_ = src.Close()
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source error: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database error: %w", dberr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
