// Package problem maps domain errors to RFC 7807 responses.
package problem

import (
	"errors"

	"github.com/HoangNobi25/thuchi/internal/domain/ledger"
	"github.com/HoangNobi25/thuchi/internal/domain/report"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// From converts err into a huma.StatusError. notFound is the detail used for
// ErrNotFound. Unclassified errors are logged and hidden behind a 500.
func From(err error, notFound string, log *slog.Logger) error {
	var se huma.StatusError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &se):
		return err
	case ledger.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, ledger.ErrNotFound):
		return huma.Error404NotFound(notFound)
	case errors.Is(err, report.ErrInvalidRange),
		errors.Is(err, report.ErrInvalidPeriod),
		errors.Is(err, model.ErrInvalidKind):
		return huma.Error400BadRequest(err.Error())
	}

	log.Error("request failed", "error", err)
	return huma.Error500InternalServerError("internal server error")
}
