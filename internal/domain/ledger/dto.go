package ledger

import (
	"github.com/HoangNobi25/thuchi/internal/model"
)

const msgMissingFields = "Missing required fields"

// Draft is an unvalidated new record. Code holds the income type or the expense category.
type Draft struct {
	Amount *model.Amount
	Code   *string
	Date   *string
	Note   *string
}

// Patch carries the fields of a partial update; nil means "leave as is".
type Patch struct {
	Amount *model.Amount
	Code   *string
	Date   *string
	Note   *string
}

// Record validates the draft for kind and returns a record without an id.
func (d Draft) Record(kind model.Kind) (model.Record, error) {
	if d.Amount == nil || d.Amount.IsZero() || d.Code == nil || *d.Code == "" || d.Date == nil || *d.Date == "" {
		return model.Record{}, &ValidationError{Message: msgMissingFields}
	}

	var rec model.Record
	if d.Note != nil {
		rec.Note = *d.Note
	}
	return Patch(d).Apply(kind, rec)
}

func (p Patch) IsEmpty() bool {
	return p.Amount == nil && p.Code == nil && p.Date == nil && p.Note == nil
}

// Apply returns rec with the supplied fields replaced. rec itself is not modified.
func (p Patch) Apply(kind model.Kind, rec model.Record) (model.Record, error) {
	if p.Amount != nil {
		if !p.Amount.IsPositive() {
			return model.Record{}, invalid("amount", "must be a positive number")
		}
		rec.Amount = *p.Amount
	}
	if p.Code != nil {
		c, err := kind.ParseCategory(*p.Code)
		if err != nil {
			return model.Record{}, invalid(kind.CodeField(), err.Error())
		}
		rec.Category = c
	}
	if p.Date != nil {
		d, err := model.ParseDate(*p.Date)
		if err != nil {
			return model.Record{}, invalid("date", "must be a calendar date in YYYY-MM-DD format")
		}
		rec.Date = d
	}
	if p.Note != nil {
		rec.Note = *p.Note
	}
	return rec, nil
}
