package ledger

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/HoangNobi25/thuchi/internal/domain/report"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, kind model.Kind) ([]model.Record, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, kind model.Kind, rec model.Record) (model.Record, error) {
	args := m.Called(ctx, kind, rec)
	return args.Get(0).(model.Record), args.Error(1)
}

// Update runs fn against the stored record so tests see the patched result.
func (m *MockRepository) Update(ctx context.Context, kind model.Kind, id int64, fn func(model.Record) (model.Record, error)) (model.Record, error) {
	args := m.Called(ctx, kind, id)
	if err := args.Error(1); err != nil {
		return model.Record{}, err
	}
	return fn(args.Get(0).(model.Record))
}

func (m *MockRepository) Delete(ctx context.Context, kind model.Kind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockRepository) Close() error {
	return m.Called().Error(0)
}

type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(w io.Writer, incomes, expenses []model.Record) error {
	args := m.Called(w, incomes, expenses)
	return args.Error(0)
}

func newTestService(repo *MockRepository, exp *MockExporter) Servicer {
	return NewService(repo, exp, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ptr[T any](v T) *T {
	return &v
}

func amount(s string) *model.Amount {
	return ptr(model.MustAmount(s))
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, nil)

		want := model.Record{
			Amount:   model.MustAmount("100"),
			Category: model.CategoryCash,
			Date:     model.NewDate(2024, time.January, 1),
		}
		created := want
		created.ID = 1704067200000
		repo.On("Insert", ctx, model.KindIncome, want).Return(created, nil)

		got, err := svc.Create(ctx, model.KindIncome, Draft{
			Amount: amount("100"),
			Code:   ptr("cash"),
			Date:   ptr("2024-01-01"),
		})

		require.NoError(t, err)
		assert.Equal(t, created, got)
		repo.AssertExpectations(t)
	})

	tests := []struct {
		name  string
		kind  model.Kind
		draft Draft
		field string
	}{
		{
			name:  "missing amount",
			kind:  model.KindExpense,
			draft: Draft{Code: ptr("food"), Date: ptr("2024-01-01")},
		},
		{
			name:  "zero amount",
			kind:  model.KindExpense,
			draft: Draft{Amount: amount("0"), Code: ptr("food"), Date: ptr("2024-01-01")},
		},
		{
			name:  "missing date",
			kind:  model.KindExpense,
			draft: Draft{Amount: amount("10"), Code: ptr("food")},
		},
		{
			name:  "missing code",
			kind:  model.KindIncome,
			draft: Draft{Amount: amount("10"), Date: ptr("2024-01-01")},
		},
		{
			name:  "negative amount",
			kind:  model.KindExpense,
			draft: Draft{Amount: amount("-5"), Code: ptr("food"), Date: ptr("2024-01-01")},
			field: "amount",
		},
		{
			name:  "expense code on income",
			kind:  model.KindIncome,
			draft: Draft{Amount: amount("10"), Code: ptr("fuel"), Date: ptr("2024-01-01")},
			field: "type",
		},
		{
			name:  "bad date",
			kind:  model.KindExpense,
			draft: Draft{Amount: amount("10"), Code: ptr("fuel"), Date: ptr("2024-13-01")},
			field: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := newTestService(repo, nil)

			_, err := svc.Create(ctx, tt.kind, tt.draft)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.field, ve.Field)
			repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	stored := model.Record{
		ID:       42,
		Amount:   model.MustAmount("30"),
		Category: model.CategoryFood,
		Date:     model.NewDate(2024, time.January, 2),
		Note:     "lunch",
	}

	t.Run("Partial", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, nil)
		repo.On("Update", ctx, model.KindExpense, int64(42)).Return(stored, nil)

		got, err := svc.Update(ctx, model.KindExpense, 42, Patch{Amount: amount("35")})

		require.NoError(t, err)
		assert.Equal(t, "35", got.Amount.String())
		assert.Equal(t, stored.Category, got.Category)
		assert.Equal(t, stored.Date, got.Date)
		assert.Equal(t, "lunch", got.Note)
	})

	t.Run("EmptyPatch", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, nil)
		repo.On("Update", ctx, model.KindExpense, int64(42)).Return(stored, nil)

		got, err := svc.Update(ctx, model.KindExpense, 42, Patch{})

		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, nil)
		repo.On("Update", ctx, model.KindIncome, int64(7)).Return(model.Record{}, ErrNotFound)

		_, err := svc.Update(ctx, model.KindIncome, 7, Patch{Note: ptr("x")})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("InvalidPatchSkipsStore", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, nil)

		_, err := svc.Update(ctx, model.KindExpense, 42, Patch{Code: ptr("cash")})

		assert.True(t, IsValidation(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := newTestService(repo, nil)

	repo.On("Delete", ctx, model.KindExpense, int64(1)).Return(nil).Once()
	repo.On("Delete", ctx, model.KindExpense, int64(1)).Return(ErrNotFound).Once()
	repo.On("Delete", ctx, model.KindExpense, int64(2)).Return(errors.New("disk full")).Once()

	assert.NoError(t, svc.Delete(ctx, model.KindExpense, 1))
	assert.ErrorIs(t, svc.Delete(ctx, model.KindExpense, 1), ErrNotFound)

	err := svc.Delete(ctx, model.KindExpense, 2)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestService_Totals(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := newTestService(repo, nil)

	repo.On("List", ctx, model.KindIncome).Return([]model.Record{
		{ID: 1, Amount: model.MustAmount("100"), Date: model.NewDate(2024, time.January, 1)},
		{ID: 2, Amount: model.MustAmount("50"), Date: model.NewDate(2024, time.January, 8)},
	}, nil)

	totals, err := svc.Totals(ctx, model.KindIncome, report.PeriodWeek)

	require.NoError(t, err)
	assert.Len(t, totals, 2)
	assert.Equal(t, "100", totals["2024-W1"].String())
	assert.Equal(t, "50", totals["2024-W2"].String())
}

func TestService_Balances(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, nil)

		repo.On("List", mock.Anything, model.KindIncome).Return([]model.Record{
			{ID: 1, Amount: model.MustAmount("100"), Date: model.NewDate(2024, time.January, 1)},
		}, nil)
		repo.On("List", mock.Anything, model.KindExpense).Return([]model.Record{
			{ID: 2, Amount: model.MustAmount("20"), Date: model.NewDate(2024, time.January, 6)},
		}, nil)

		b, err := svc.Balances(context.Background(), "2024-01-05", "2024-01-10")

		require.NoError(t, err)
		assert.Equal(t, "100", b.Beginning.String())
		assert.Equal(t, "80", b.Ending.String())
	})

	t.Run("InvalidRangeSkipsStore", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, nil)

		_, err := svc.Balances(context.Background(), "", "2024-01-10")

		assert.ErrorIs(t, err, report.ErrInvalidRange)
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("StoreError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, nil)
		boom := errors.New("boom")

		repo.On("List", mock.Anything, model.KindIncome).Return(nil, boom)
		repo.On("List", mock.Anything, model.KindExpense).Return([]model.Record{}, nil).Maybe()

		_, err := svc.Balances(context.Background(), "2024-01-01", "2024-01-02")

		assert.ErrorIs(t, err, boom)
	})
}

func TestService_Export(t *testing.T) {
	repo := new(MockRepository)
	exp := new(MockExporter)
	svc := newTestService(repo, exp)

	incomes := []model.Record{{ID: 1, Amount: model.MustAmount("1")}}
	expenses := []model.Record{{ID: 2, Amount: model.MustAmount("2")}}
	repo.On("List", mock.Anything, model.KindIncome).Return(incomes, nil)
	repo.On("List", mock.Anything, model.KindExpense).Return(expenses, nil)

	var buf bytes.Buffer
	exp.On("Export", &buf, incomes, expenses).Return(nil)

	require.NoError(t, svc.Export(context.Background(), &buf))
	exp.AssertExpectations(t)
}

func TestNextID(t *testing.T) {
	now := time.UnixMilli(1704067200000)

	assert.Equal(t, int64(1704067200000), NextID(now, 0))
	assert.Equal(t, int64(1704067200000), NextID(now, 1704067199999))
	// same millisecond
	assert.Equal(t, int64(1704067200001), NextID(now, 1704067200000))
	// clock went backwards
	assert.Equal(t, int64(1704067300001), NextID(now, 1704067300000))
}
