package entry

import (
	"fmt"
	"strconv"

	"github.com/HoangNobi25/thuchi/internal/domain/ledger"
	"github.com/HoangNobi25/thuchi/internal/model"
)

// request is shared by create and update. Only the code field matching the
// collection is read: "type" for incomes, "category" for expenses.
type request struct {
	Amount   *model.Amount `json:"amount,omitempty"`
	Type     *string       `json:"type,omitempty" doc:"Income type: cash, card or side" example:"cash"`
	Category *string       `json:"category,omitempty" doc:"Expense category: goods, food, fuel or entertainment" example:"food"`
	Date     *string       `json:"date,omitempty" doc:"Calendar date, YYYY-MM-DD" example:"2024-01-01"`
	Note     *string       `json:"note,omitempty" maxLength:"1000"`
}

func (r request) code(kind model.Kind) *string {
	if kind == model.KindIncome {
		return r.Type
	}
	return r.Category
}

func (r request) draft(kind model.Kind) ledger.Draft {
	return ledger.Draft{
		Amount: r.Amount,
		Code:   r.code(kind),
		Date:   r.Date,
		Note:   r.Note,
	}
}

func (r request) patch(kind model.Kind) ledger.Patch {
	return ledger.Patch(r.draft(kind))
}

type listOutput struct {
	Body []model.Entry
}

type createInput struct {
	Body request
}

type updateInput struct {
	ID   string `path:"id" doc:"Record id" example:"1704153600000"`
	Body request
}

type deleteInput struct {
	ID string `path:"id" doc:"Record id" example:"1704153600000"`
}

// parseID: id, который не является числом, не может принадлежать записи.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id %q: %w", s, ledger.ErrNotFound)
	}
	return id, nil
}

type entryOutput struct {
	Body model.Entry
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Success bool `json:"success" example:"true"`
}
