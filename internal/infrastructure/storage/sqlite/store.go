package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/HoangNobi25/thuchi/internal/domain/ledger"
	"github.com/HoangNobi25/thuchi/internal/infrastructure/migration"
	"github.com/HoangNobi25/thuchi/internal/model"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Store struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

// New migrates the database file at path and opens it.
func New(ctx context.Context, path string, log *slog.Logger) (*Store, error) {
	mg := migration.NewMigration(migrations, "migrations", "sqlite3://"+path, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// a single writer avoids SQLITE_BUSY between our own goroutines
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}

	return &Store{
		db:  db,
		log: log.With("component", "sqlite_store"),
		now: time.Now,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// table names come from the closed model.Kind set, never from user input
func table(kind model.Kind) string {
	return kind.Collection()
}

func (s *Store) List(ctx context.Context, kind model.Kind) ([]model.Record, error) {
	query := fmt.Sprintf(`SELECT id, amount, category, date, note FROM %s ORDER BY id`, table(kind))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.log.Error("failed to list records", "kind", kind, "error", err)
		return nil, fmt.Errorf("list %s: %w", table(kind), err)
	}
	defer rows.Close()

	var out []model.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table(kind), err)
	}
	return out, nil
}

func (s *Store) Insert(ctx context.Context, kind model.Kind, rec model.Record) (model.Record, error) {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var last int64
		q := fmt.Sprintf(`SELECT COALESCE(MAX(id), 0) FROM %s`, table(kind))
		if err := tx.QueryRowContext(ctx, q).Scan(&last); err != nil {
			return fmt.Errorf("max id: %w", err)
		}

		rec.ID = ledger.NextID(s.now(), last)
		q = fmt.Sprintf(`INSERT INTO %s (id, amount, category, date, note) VALUES (?, ?, ?, ?, ?)`, table(kind))
		_, err := tx.ExecContext(ctx, q, rec.ID, rec.Amount.String(), string(rec.Category), rec.Date.String(), rec.Note)
		return err
	})
	if err != nil {
		return model.Record{}, fmt.Errorf("insert into %s: %w", table(kind), err)
	}
	return rec, nil
}

func (s *Store) Update(
	ctx context.Context,
	kind model.Kind,
	id int64,
	fn func(model.Record) (model.Record, error),
) (model.Record, error) {
	var updated model.Record
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		q := fmt.Sprintf(`SELECT id, amount, category, date, note FROM %s WHERE id = ?`, table(kind))
		rec, err := scanRecord(tx.QueryRowContext(ctx, q, id))
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.ErrNotFound
		}
		if err != nil {
			return err
		}

		if updated, err = fn(rec); err != nil {
			return err
		}
		updated.ID = id

		q = fmt.Sprintf(`UPDATE %s SET amount = ?, category = ?, date = ?, note = ? WHERE id = ?`, table(kind))
		_, err = tx.ExecContext(ctx, q,
			updated.Amount.String(), string(updated.Category), updated.Date.String(), updated.Note, id)
		return err
	})
	if err != nil {
		return model.Record{}, err
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, kind model.Kind, id int64) error {
	q := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table(kind))
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table(kind), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

func (s *Store) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (model.Record, error) {
	var (
		rec                model.Record
		amount, code, date string
	)
	if err := row.Scan(&rec.ID, &amount, &code, &date, &rec.Note); err != nil {
		return model.Record{}, err
	}

	var err error
	if rec.Amount, err = model.ParseAmount(amount); err != nil {
		return model.Record{}, fmt.Errorf("record %d: %w", rec.ID, err)
	}
	if rec.Date, err = model.ParseDate(date); err != nil {
		return model.Record{}, fmt.Errorf("record %d: %w", rec.ID, err)
	}
	rec.Category = model.Category(code)
	return rec, nil
}
