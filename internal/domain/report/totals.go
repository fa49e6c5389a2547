package report

import "github.com/HoangNobi25/thuchi/internal/model"

// BucketTotals sums amounts per bucket key. Buckets without records are absent.
func BucketTotals(records []model.Record, p Period) map[string]model.Amount {
	totals := make(map[string]model.Amount)
	for _, r := range records {
		key := BucketKey(r.Date, p)
		totals[key] = totals[key].Add(r.Amount)
	}
	return totals
}
