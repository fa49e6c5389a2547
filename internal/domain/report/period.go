package report

import (
	"fmt"
	"time"

	"github.com/HoangNobi25/thuchi/internal/model"
)

// Period is the bucket granularity for totals.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
}

func (p Period) String() string {
	return string(p)
}

// BucketKey maps a date to its bucket under p:
//
//	day   2024-01-08
//	week  2024-W2
//	month 2024-01
func BucketKey(d model.Date, p Period) string {
	switch p {
	case PeriodWeek:
		return fmt.Sprintf("%d-W%d", d.Year(), WeekOfYear(d))
	case PeriodMonth:
		return d.Format("2006-01")
	default:
		return d.String()
	}
}

// WeekOfYear numbers weeks from 1 starting at January 1st and rolls over on
// Sundays, so week 1 may be shorter than seven days and a year can reach
// week 53 or 54. This is not ISO 8601.
func WeekOfYear(d model.Date) int {
	jan1 := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	elapsed := d.YearDay() - 1
	n := elapsed + int(jan1.Weekday()) + 1
	return (n + 6) / 7
}
