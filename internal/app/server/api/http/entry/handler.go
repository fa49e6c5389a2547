package entry

import (
	"context"

	"github.com/HoangNobi25/thuchi/internal/app/server/api/http/problem"
	"github.com/HoangNobi25/thuchi/internal/domain/ledger"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Handler serves CRUD for one collection: /api/incomes or /api/expenses.
type Handler struct {
	kind       model.Kind
	service    ledger.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(kind model.Kind, service ledger.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		kind:       kind,
		service:    service,
		log:        log.With("component", kind.Collection()+"_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	records, err := h.service.List(ctx, h.kind)
	if err != nil {
		return nil, h.problem(err)
	}

	return &listOutput{
		Body: model.Entries(h.kind, records),
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*entryOutput, error) {
	rec, err := h.service.Create(ctx, h.kind, input.Body.draft(h.kind))
	if err != nil {
		return nil, h.problem(err)
	}

	return &entryOutput{
		Body: rec.Entry(h.kind),
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*entryOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, h.problem(err)
	}

	rec, err := h.service.Update(ctx, h.kind, id, input.Body.patch(h.kind))
	if err != nil {
		return nil, h.problem(err)
	}

	return &entryOutput{
		Body: rec.Entry(h.kind),
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, h.problem(err)
	}

	if err := h.service.Delete(ctx, h.kind, id); err != nil {
		return nil, h.problem(err)
	}

	return &deleteOutput{
		Body: deleteResponse{Success: true},
	}, nil
}

func (h *Handler) problem(err error) error {
	notFound := "Expense not found"
	if h.kind == model.KindIncome {
		notFound = "Income not found"
	}
	return problem.From(err, notFound, h.log)
}
