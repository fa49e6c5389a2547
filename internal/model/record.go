package model

// Record is a single income or expense entry. Which one it is depends on the
// collection it is stored in.
type Record struct {
	ID       int64
	Amount   Amount
	Category Category
	Date     Date
	Note     string
}

// Entry is the JSON shape of a record shared by the API, the document store
// and the client. Incomes carry their code in "type", expenses in "category".
type Entry struct {
	ID       int64    `json:"id"`
	Amount   Amount   `json:"amount"`
	Type     Category `json:"type,omitempty"`
	Category Category `json:"category,omitempty"`
	Date     Date     `json:"date"`
	Note     string   `json:"note"`
}

func (r Record) Entry(k Kind) Entry {
	e := Entry{
		ID:     r.ID,
		Amount: r.Amount,
		Date:   r.Date,
		Note:   r.Note,
	}
	if k == KindIncome {
		e.Type = r.Category
	} else {
		e.Category = r.Category
	}
	return e
}

func (e Entry) Record(k Kind) Record {
	code := e.Category
	if k == KindIncome {
		code = e.Type
	}
	return Record{
		ID:       e.ID,
		Amount:   e.Amount,
		Category: code,
		Date:     e.Date,
		Note:     e.Note,
	}
}

// Code returns the category code regardless of which field carries it.
func (e Entry) Code() Category {
	if e.Type != "" {
		return e.Type
	}
	return e.Category
}

func Entries(k Kind, records []Record) []Entry {
	out := make([]Entry, 0, len(records))
	for _, r := range records {
		out = append(out, r.Entry(k))
	}
	return out
}
