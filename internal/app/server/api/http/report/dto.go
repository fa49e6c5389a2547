package report

import "github.com/HoangNobi25/thuchi/internal/model"

type totalsInput struct {
	Type   string `query:"type" doc:"Collection: income or expense" example:"income"`
	Period string `query:"period" doc:"Bucket size: day, week or month" example:"week"`
}

type totalsOutput struct {
	Body map[string]model.Amount
}

type balancesInput struct {
	Start string `query:"start" doc:"First day of the range, YYYY-MM-DD" example:"2024-01-01"`
	End   string `query:"end" doc:"Last day of the range, YYYY-MM-DD" example:"2024-01-31"`
}

type balancesOutput struct {
	Body balancesResponse
}

type balancesResponse struct {
	BeginningBalance model.Amount `json:"beginningBalance" doc:"Net amount strictly before start"`
	EndingBalance    model.Amount `json:"endingBalance" doc:"Net amount up to and including end"`
}

type exportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}
