package report

import (
	"testing"
	"time"

	"github.com/HoangNobi25/thuchi/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"day", "week", "month"} {
		p, err := ParsePeriod(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}

	for _, s := range []string{"", "year", "Week"} {
		_, err := ParsePeriod(s)
		assert.ErrorIs(t, err, ErrInvalidPeriod, s)
	}
}

func TestBucketKey(t *testing.T) {
	tests := []struct {
		name   string
		date   model.Date
		period Period
		want   string
	}{
		{"day", model.NewDate(2024, time.March, 5), PeriodDay, "2024-03-05"},
		{"month", model.NewDate(2024, time.March, 5), PeriodMonth, "2024-03"},
		// 2024-01-01 is a Monday
		{"week first day", model.NewDate(2024, time.January, 1), PeriodWeek, "2024-W1"},
		{"week saturday", model.NewDate(2024, time.January, 6), PeriodWeek, "2024-W1"},
		{"week rolls on sunday", model.NewDate(2024, time.January, 7), PeriodWeek, "2024-W2"},
		{"week next monday", model.NewDate(2024, time.January, 8), PeriodWeek, "2024-W2"},
		// 2021-01-01 is a Friday: week 1 has two days
		{"short first week", model.NewDate(2021, time.January, 2), PeriodWeek, "2021-W1"},
		{"short first week ends", model.NewDate(2021, time.January, 3), PeriodWeek, "2021-W2"},
		{"year end", model.NewDate(2024, time.December, 31), PeriodWeek, "2024-W53"},
		// leap year starting on Saturday
		{"week 54", model.NewDate(2000, time.December, 31), PeriodWeek, "2000-W54"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketKey(tt.date, tt.period))
		})
	}
}
