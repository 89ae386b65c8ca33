// Package period computes the calendar window a recurrence tag covers.
// Every component that needs "current week/month/year" resolves it here,
// so window arithmetic cannot drift between call sites.
package period

import (
	"time"

	apperrors "lucrum/internal/errors"
	"lucrum/internal/models"
)

// Window returns the [start, end] calendar dates covered by the given
// period tag, anchored to the reference instant. Both bounds are
// truncated to midnight in the reference location.
//
// Weekly windows always start on the most recent Monday on or before the
// reference date. Monthly windows cover day 1 through the true last day
// of the reference month. Yearly windows cover Jan 1 through Dec 31.
func Window(p models.BudgetPeriod, now time.Time) (time.Time, time.Time, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch p {
	case models.BudgetPeriodWeekly:
		// time.Weekday counts Sunday as 0; shift so Monday is 0.
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil

	case models.BudgetPeriodMonthly:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		// Day 28 plus 4 days always lands in the next month regardless of
		// month length; truncating to day 1 and stepping back one day gives
		// the true last day without a per-month table.
		nextMonth := time.Date(day.Year(), day.Month(), 28, 0, 0, 0, 0, day.Location()).AddDate(0, 0, 4)
		end := time.Date(nextMonth.Year(), nextMonth.Month(), 1, 0, 0, 0, 0, day.Location()).AddDate(0, 0, -1)
		return start, end, nil

	case models.BudgetPeriodYearly:
		start := time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location())
		end := time.Date(day.Year(), 12, 31, 0, 0, 0, 0, day.Location())
		return start, end, nil
	}

	return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "Unrecognized budget period: "+string(p))
}

// MonthToDate returns the window from the first day of the reference
// month through the reference date itself. Budget alerts are always
// measured against this window, whatever the budget's own period.
func MonthToDate(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	return start, end
}

// DaysUntil returns the whole number of calendar days from today until
// the given due date. Negative values mean the date is past due.
func DaysUntil(due, now time.Time) int {
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(n).Hours() / 24)
}
