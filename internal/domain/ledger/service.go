package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/HoangNobi25/thuchi/internal/domain/report"
	"github.com/HoangNobi25/thuchi/internal/model"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// Service implements the ledger use cases on top of a Repository.
type Service struct {
	repo     Repository
	exporter Exporter
	log      *slog.Logger
}

type Servicer interface {
	List(ctx context.Context, kind model.Kind) ([]model.Record, error)
	Create(ctx context.Context, kind model.Kind, draft Draft) (model.Record, error)
	Update(ctx context.Context, kind model.Kind, id int64, patch Patch) (model.Record, error)
	Delete(ctx context.Context, kind model.Kind, id int64) error
	Totals(ctx context.Context, kind model.Kind, period report.Period) (map[string]model.Amount, error)
	Balances(ctx context.Context, start, end string) (report.Balances, error)
	Export(ctx context.Context, w io.Writer) error
}

// NewService creates a new ledger service
func NewService(repo Repository, exporter Exporter, log *slog.Logger) Servicer {
	return &Service{
		repo:     repo,
		exporter: exporter,
		log:      log.With("component", "ledger_service"),
	}
}

func (s *Service) List(ctx context.Context, kind model.Kind) ([]model.Record, error) {
	records, err := s.repo.List(ctx, kind)
	if err != nil {
		s.log.Error("failed to list records", "kind", kind, "error", err)
		return nil, fmt.Errorf("list %s: %w", kind.Collection(), err)
	}
	return records, nil
}

func (s *Service) Create(ctx context.Context, kind model.Kind, draft Draft) (model.Record, error) {
	rec, err := draft.Record(kind)
	if err != nil {
		return model.Record{}, err
	}

	created, err := s.repo.Insert(ctx, kind, rec)
	if err != nil {
		s.log.Error("failed to insert record", "kind", kind, "error", err)
		return model.Record{}, fmt.Errorf("insert %s: %w", kind, err)
	}

	s.log.Debug("record created", "kind", kind, "id", created.ID, "amount", created.Amount.String())
	return created, nil
}

func (s *Service) Update(ctx context.Context, kind model.Kind, id int64, patch Patch) (model.Record, error) {
	// validate before touching the store so a bad patch never rewrites it
	if _, err := patch.Apply(kind, model.Record{}); err != nil {
		return model.Record{}, err
	}

	updated, err := s.repo.Update(ctx, kind, id, func(rec model.Record) (model.Record, error) {
		if patch.IsEmpty() {
			return rec, nil
		}
		return patch.Apply(kind, rec)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Record{}, ErrNotFound
		}
		s.log.Error("failed to update record", "kind", kind, "id", id, "error", err)
		return model.Record{}, fmt.Errorf("update %s %d: %w", kind, id, err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, kind model.Kind, id int64) error {
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete record", "kind", kind, "id", id, "error", err)
		return fmt.Errorf("delete %s %d: %w", kind, id, err)
	}

	s.log.Debug("record deleted", "kind", kind, "id", id)
	return nil
}

func (s *Service) Totals(ctx context.Context, kind model.Kind, period report.Period) (map[string]model.Amount, error) {
	records, err := s.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	return report.BucketTotals(records, period), nil
}

func (s *Service) Balances(ctx context.Context, start, end string) (report.Balances, error) {
	rng, err := report.ParseRange(start, end)
	if err != nil {
		return report.Balances{}, err
	}

	incomes, expenses, err := s.both(ctx)
	if err != nil {
		return report.Balances{}, err
	}
	return rng.Balance(incomes, expenses), nil
}

func (s *Service) Export(ctx context.Context, w io.Writer) error {
	incomes, expenses, err := s.both(ctx)
	if err != nil {
		return err
	}

	if err := s.exporter.Export(w, incomes, expenses); err != nil {
		s.log.Error("failed to export workbook", "error", err)
		return fmt.Errorf("export workbook: %w", err)
	}
	return nil
}

// both loads the two collections concurrently.
func (s *Service) both(ctx context.Context) (incomes, expenses []model.Record, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = s.List(gctx, model.KindIncome)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.List(gctx, model.KindExpense)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return incomes, expenses, nil
}
