package report

import (
	"net/http"

	"github.com/HoangNobi25/thuchi/internal/infrastructure/export"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) totalsOp() huma.Operation {
	return huma.Operation{
		OperationID: "totals-get",
		Method:      http.MethodGet,
		Path:        "/api/totals",
		Summary:     "Totals per period",
		Description: "Sums amounts of one collection into day (YYYY-MM-DD), week (YYYY-W<n>) or month (YYYY-MM) buckets. Empty buckets are omitted.",
		Tags:        []string{"reports"},
		Errors:      []int{http.StatusBadRequest},
		Middlewares: h.middleware,
	}
}

func (h *Handler) balancesOp() huma.Operation {
	return huma.Operation{
		OperationID: "balances-get",
		Method:      http.MethodGet,
		Path:        "/api/balances",
		Summary:     "Beginning and ending balance",
		Tags:        []string{"reports"},
		Errors:      []int{http.StatusBadRequest},
		Middlewares: h.middleware,
	}
}

func (h *Handler) exportOp() huma.Operation {
	return huma.Operation{
		OperationID: "export-xlsx",
		Method:      http.MethodGet,
		Path:        "/api/export",
		Summary:     "Download " + export.FileName,
		Tags:        []string{"reports"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Excel workbook with Incomes and Expenses sheets",
				Content: map[string]*huma.MediaType{
					export.ContentType: {},
				},
			},
		},
		Middlewares: h.middleware,
	}
}
