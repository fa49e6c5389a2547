package report

import (
	"fmt"
	"strings"

	"github.com/HoangNobi25/thuchi/internal/model"
)

type Balances struct {
	Beginning model.Amount
	Ending    model.Amount
}

// Range is an inclusive pair of calendar dates.
type Range struct {
	Start model.Date
	End   model.Date
}

func ParseRange(start, end string) (Range, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return Range{}, fmt.Errorf("%w: start and end dates are required", ErrInvalidRange)
	}
	s, err := model.ParseDate(start)
	if err != nil {
		return Range{}, fmt.Errorf("%w: start: %w", ErrInvalidRange, err)
	}
	e, err := model.ParseDate(end)
	if err != nil {
		return Range{}, fmt.Errorf("%w: end: %w", ErrInvalidRange, err)
	}
	if s.After(e.Time) {
		return Range{}, fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, s, e)
	}
	return Range{Start: s, End: e}, nil
}

// Balance computes the net position strictly before start and up to end inclusive.
func Balance(incomes, expenses []model.Record, start, end string) (Balances, error) {
	rng, err := ParseRange(start, end)
	if err != nil {
		return Balances{}, err
	}
	return rng.Balance(incomes, expenses), nil
}

func (r Range) Balance(incomes, expenses []model.Record) Balances {
	var b Balances
	for _, rec := range incomes {
		if rec.Date.Before(r.Start.Time) {
			b.Beginning = b.Beginning.Add(rec.Amount)
		}
		if !rec.Date.After(r.End.Time) {
			b.Ending = b.Ending.Add(rec.Amount)
		}
	}
	for _, rec := range expenses {
		if rec.Date.Before(r.Start.Time) {
			b.Beginning = b.Beginning.Sub(rec.Amount)
		}
		if !rec.Date.After(r.End.Time) {
			b.Ending = b.Ending.Sub(rec.Amount)
		}
	}
	return b
}
