package client

import "github.com/HoangNobi25/thuchi/internal/model"

// EntryInput is the body of create and update requests. Nil fields are not sent.
type EntryInput struct {
	Amount   *model.Amount `json:"amount,omitempty"`
	Type     *string       `json:"type,omitempty"`
	Category *string       `json:"category,omitempty"`
	Date     *string       `json:"date,omitempty"`
	Note     *string       `json:"note,omitempty"`
}

// SetCode puts code into the field the server reads for kind.
func (in *EntryInput) SetCode(kind model.Kind, code string) {
	if kind == model.KindIncome {
		in.Type = &code
		return
	}
	in.Category = &code
}

type Balances struct {
	BeginningBalance model.Amount `json:"beginningBalance"`
	EndingBalance    model.Amount `json:"endingBalance"`
}

// problem is the RFC 7807 body returned by the server on errors.
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
	Errors []struct {
		Message  string `json:"message"`
		Location string `json:"location"`
	} `json:"errors"`
	// старый express-сервер отвечал {"error": "..."}
	Error string `json:"error"`
}
