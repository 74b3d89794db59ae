package dates

import (
	"fmt"
	"time"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
)

// periodLayout is the persisted, sortable year-month key format.
const periodLayout = "2006-01"

// PeriodOf returns the "YYYY-MM" period key for the given date.
func PeriodOf(t time.Time) string {
	return t.Format(periodLayout)
}

// FormatPeriod builds a "YYYY-MM" period key from a year and month.
func FormatPeriod(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParsePeriod parses a "YYYY-MM" period key into its year and month.
func ParsePeriod(period string) (int, time.Month, error) {
	t, err := time.Parse(periodLayout, period)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: period must be in YYYY-MM format, got %q", apperrors.ErrValidation, period)
	}
	return t.Year(), t.Month(), nil
}

// MonthsBetween counts whole calendar-month boundaries crossed between from
// and to, ignoring the day of month. A purchase on Jan 31 is one month old
// on Feb 1. Negative when to precedes from.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// MonthBounds returns the first and last day of the given calendar month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// DaysInMonth returns the number of days in the given calendar month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
