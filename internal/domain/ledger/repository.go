package ledger

import (
	"context"
	"io"

	"github.com/HoangNobi25/thuchi/internal/model"
)

// Repository хранит две упорядоченные коллекции записей: доходы и расходы.
type Repository interface {
	// List returns the collection in insertion order.
	List(ctx context.Context, kind model.Kind) ([]model.Record, error)
	// Insert assigns an id (see NextID) and appends rec.
	Insert(ctx context.Context, kind model.Kind, rec model.Record) (model.Record, error)
	// Update loads the record, passes it to fn and persists the result. ErrNotFound if absent.
	Update(ctx context.Context, kind model.Kind, id int64, fn func(model.Record) (model.Record, error)) (model.Record, error)
	// Delete removes the record or returns ErrNotFound.
	Delete(ctx context.Context, kind model.Kind, id int64) error
	Close() error
}

// Exporter renders both collections into a spreadsheet.
type Exporter interface {
	Export(w io.Writer, incomes, expenses []model.Record) error
}
