package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HoangNobi25/thuchi/internal/domain/ledger"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/jackc/pgx/v5"
)

func table(kind model.Kind) string {
	return kind.Collection()
}

func (s *Storage) List(ctx context.Context, kind model.Kind) ([]model.Record, error) {
	query := fmt.Sprintf(`
		SELECT id, amount::text, category, date, note
		FROM %s
		ORDER BY id`, table(kind))

	rows, err := s.pool.Query(ctx, query)
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

func (s *Storage) Insert(ctx context.Context, kind model.Kind, rec model.Record) (model.Record, error) {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		// serialise id assignment per table
		lock := fmt.Sprintf(`LOCK TABLE %s IN SHARE ROW EXCLUSIVE MODE`, table(kind))
		if _, err := tx.Exec(ctx, lock); err != nil {
			return fmt.Errorf("lock: %w", err)
		}

		var last int64
		q := fmt.Sprintf(`SELECT COALESCE(MAX(id), 0) FROM %s`, table(kind))
		if err := tx.QueryRow(ctx, q).Scan(&last); err != nil {
			return fmt.Errorf("max id: %w", err)
		}

		rec.ID = ledger.NextID(s.now(), last)
		q = fmt.Sprintf(`
			INSERT INTO %s (id, amount, category, date, note)
			VALUES ($1, $2::numeric, $3, $4, $5)`, table(kind))
		_, err := tx.Exec(ctx, q, rec.ID, rec.Amount.String(), string(rec.Category), rec.Date.Time, rec.Note)
		return err
	})
	if err != nil {
		s.log.Error("failed to insert record", "kind", kind, "error", err)
		return model.Record{}, fmt.Errorf("insert into %s: %w", table(kind), err)
	}
	return rec, nil
}

func (s *Storage) Update(
	ctx context.Context,
	kind model.Kind,
	id int64,
	fn func(model.Record) (model.Record, error),
) (model.Record, error) {
	var updated model.Record
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		q := fmt.Sprintf(`
			SELECT id, amount::text, category, date, note
			FROM %s
			WHERE id = $1
			FOR UPDATE`, table(kind))
		rec, err := scanRecord(tx.QueryRow(ctx, q, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.ErrNotFound
		}
		if err != nil {
			return err
		}

		if updated, err = fn(rec); err != nil {
			return err
		}
		updated.ID = id

		q = fmt.Sprintf(`
			UPDATE %s
			SET amount = $1::numeric, category = $2, date = $3, note = $4
			WHERE id = $5`, table(kind))
		_, err = tx.Exec(ctx, q,
			updated.Amount.String(), string(updated.Category), updated.Date.Time, updated.Note, id)
		return err
	})
	if err != nil {
		return model.Record{}, err
	}
	return updated, nil
}

func (s *Storage) Delete(ctx context.Context, kind model.Kind, id int64) error {
	q := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table(kind))
	tag, err := s.pool.Exec(ctx, q, id)
	if err != nil {
		s.log.Error("failed to delete record", "kind", kind, "id", id, "error", err)
		return fmt.Errorf("delete from %s: %w", table(kind), err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (model.Record, error) {
	var (
		rec          model.Record
		amount, code string
		date         time.Time
	)
	if err := row.Scan(&rec.ID, &amount, &code, &date, &rec.Note); err != nil {
		return model.Record{}, err
	}

	a, err := model.ParseAmount(amount)
	if err != nil {
		return model.Record{}, fmt.Errorf("record %d: %w", rec.ID, err)
	}
	rec.Amount = a
	rec.Category = model.Category(code)
	rec.Date = model.NewDate(date.Year(), date.Month(), date.Day())
	return rec, nil
}
