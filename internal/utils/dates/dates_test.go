package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/utils/dates"
)

func TestPeriodOf(t *testing.T) {
	assert.Equal(t, "2024-01", dates.PeriodOf(time.Date(2024, time.January, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", dates.PeriodOf(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "2024-03", dates.FormatPeriod(2024, time.March))
	assert.Equal(t, "0099-11", dates.FormatPeriod(99, time.November))
}

func TestParsePeriod(t *testing.T) {
	year, month, err := dates.ParsePeriod("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.March, month)

	for _, bad := range []string{"2024-3", "2024/03", "March 2024", "", "2024-13"} {
		_, _, err := dates.ParsePeriod(bad)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "input %q", bad)
	}
}

func TestMonthsBetween(t *testing.T) {
	jan31 := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	// Day of month is ignored: Jan 31 to Feb 1 is one month.
	assert.Equal(t, 1, dates.MonthsBetween(jan31, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, dates.MonthsBetween(jan31, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 12, dates.MonthsBetween(jan31, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -2, dates.MonthsBetween(jan31, time.Date(2023, time.November, 30, 0, 0, 0, 0, time.UTC)))
}

func TestMonthBounds(t *testing.T) {
	start, end := dates.MonthBounds(2024, time.February)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	// 2024 is a leap year.
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), end)

	start, end = dates.MonthBounds(2024, time.December)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, dates.DaysInMonth(2024, time.February))
	assert.Equal(t, 28, dates.DaysInMonth(2023, time.February))
	assert.Equal(t, 31, dates.DaysInMonth(2024, time.March))
	assert.Equal(t, 30, dates.DaysInMonth(2024, time.April))
}
