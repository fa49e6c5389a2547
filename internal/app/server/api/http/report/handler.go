package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/HoangNobi25/thuchi/internal/app/server/api/http/problem"
	"github.com/HoangNobi25/thuchi/internal/domain/ledger"
	domain "github.com/HoangNobi25/thuchi/internal/domain/report"
	"github.com/HoangNobi25/thuchi/internal/infrastructure/export"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Handler serves the read-only views over both collections.
type Handler struct {
	service    ledger.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service ledger.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "report_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.totalsOp(), h.totals)
	huma.Register(api, h.balancesOp(), h.balances)
	huma.Register(api, h.exportOp(), h.export)
}

func (h *Handler) totals(ctx context.Context, input *totalsInput) (*totalsOutput, error) {
	if input.Type == "" || input.Period == "" {
		return nil, huma.Error400BadRequest("Missing type or period query parameter")
	}
	kind, err := model.ParseKind(input.Type)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid type parameter")
	}
	period, err := domain.ParsePeriod(input.Period)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid period parameter")
	}

	totals, err := h.service.Totals(ctx, kind, period)
	if err != nil {
		return nil, problem.From(err, "", h.log)
	}

	return &totalsOutput{Body: totals}, nil
}

func (h *Handler) balances(ctx context.Context, input *balancesInput) (*balancesOutput, error) {
	b, err := h.service.Balances(ctx, input.Start, input.End)
	if err != nil {
		return nil, problem.From(err, "", h.log)
	}

	return &balancesOutput{
		Body: balancesResponse{
			BeginningBalance: b.Beginning,
			EndingBalance:    b.Ending,
		},
	}, nil
}

func (h *Handler) export(ctx context.Context, _ *struct{}) (*exportOutput, error) {
	var buf bytes.Buffer
	if err := h.service.Export(ctx, &buf); err != nil {
		return nil, problem.From(err, "", h.log)
	}

	return &exportOutput{
		ContentType:        export.ContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", export.FileName),
		Body:               buf.Bytes(),
	}, nil
}
