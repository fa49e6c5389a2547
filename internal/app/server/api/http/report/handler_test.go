package report

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/HoangNobi25/thuchi/internal/domain/ledger"
	domain "github.com/HoangNobi25/thuchi/internal/domain/report"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, kind model.Kind) ([]model.Record, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, kind model.Kind, draft ledger.Draft) (model.Record, error) {
	args := m.Called(ctx, kind, draft)
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, kind model.Kind, id int64, patch ledger.Patch) (model.Record, error) {
	args := m.Called(ctx, kind, id, patch)
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, kind model.Kind, id int64) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *MockService) Totals(ctx context.Context, kind model.Kind, period domain.Period) (map[string]model.Amount, error) {
	args := m.Called(ctx, kind, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Amount), args.Error(1)
}

func (m *MockService) Balances(ctx context.Context, start, end string) (domain.Balances, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(domain.Balances), args.Error(1)
}

func (m *MockService) Export(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	if err := args.Error(0); err != nil {
		return err
	}
	_, err := w.Write([]byte("PK"))
	return err
}

func newHandler(svc *MockService) *Handler {
	return NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
}

func errorModel(t *testing.T, err error) *huma.ErrorModel {
	t.Helper()
	var em *huma.ErrorModel
	require.ErrorAs(t, err, &em)
	return em
}

func TestHandler_Totals(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := newHandler(svc)
		svc.On("Totals", ctx, model.KindIncome, domain.PeriodWeek).Return(map[string]model.Amount{
			"2024-W1": model.MustAmount("100"),
			"2024-W2": model.MustAmount("50"),
		}, nil)

		out, err := h.totals(ctx, &totalsInput{Type: "income", Period: "week"})

		require.NoError(t, err)
		assert.Len(t, out.Body, 2)
		assert.Equal(t, "50", out.Body["2024-W2"].String())
	})

	tests := []struct {
		name   string
		input  totalsInput
		detail string
	}{
		{"missing type", totalsInput{Period: "day"}, "Missing type or period query parameter"},
		{"missing period", totalsInput{Type: "income"}, "Missing type or period query parameter"},
		{"invalid type", totalsInput{Type: "transfer", Period: "day"}, "Invalid type parameter"},
		{"invalid period", totalsInput{Type: "expense", Period: "year"}, "Invalid period parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			h := newHandler(svc)

			_, err := h.totals(ctx, &tt.input)

			em := errorModel(t, err)
			assert.Equal(t, http.StatusBadRequest, em.Status)
			assert.Equal(t, tt.detail, em.Detail)
			svc.AssertNotCalled(t, "Totals", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_Balances(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := newHandler(svc)
		svc.On("Balances", ctx, "2024-01-05", "2024-01-10").Return(domain.Balances{
			Beginning: model.MustAmount("100"),
			Ending:    model.MustAmount("80"),
		}, nil)

		out, err := h.balances(ctx, &balancesInput{Start: "2024-01-05", End: "2024-01-10"})

		require.NoError(t, err)
		assert.Equal(t, "100", out.Body.BeginningBalance.String())
		assert.Equal(t, "80", out.Body.EndingBalance.String())
	})

	t.Run("InvalidRange", func(t *testing.T) {
		svc := new(MockService)
		h := newHandler(svc)
		svc.On("Balances", ctx, "", "2024-01-10").Return(domain.Balances{}, domain.ErrInvalidRange)

		_, err := h.balances(ctx, &balancesInput{End: "2024-01-10"})

		assert.Equal(t, http.StatusBadRequest, errorModel(t, err).Status)
	})
}

func TestHandler_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := newHandler(svc)
		svc.On("Export", ctx, mock.Anything).Return(nil)

		out, err := h.export(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, []byte("PK"), out.Body)
		assert.Equal(t, `attachment; filename="income_expense_data.xlsx"`, out.ContentDisposition)
		assert.Contains(t, out.ContentType, "spreadsheetml")
	})

	t.Run("Failure", func(t *testing.T) {
		svc := new(MockService)
		h := newHandler(svc)
		svc.On("Export", ctx, mock.Anything).Return(errors.New("read db.json"))

		_, err := h.export(ctx, nil)

		assert.Equal(t, http.StatusInternalServerError, errorModel(t, err).Status)
	})
}
