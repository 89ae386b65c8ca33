package period

import (
	"testing"
	"time"

	"lucrum/internal/models"
	"lucrum/internal/testutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWindowWeekly(t *testing.T) {
	cases := []struct {
		name      string
		now       time.Time
		wantStart time.Time
	}{
		{"monday_is_its_own_start", date(2024, time.March, 4), date(2024, time.March, 4)},
		{"midweek", date(2024, time.March, 7), date(2024, time.March, 4)},
		{"sunday_belongs_to_previous_monday", date(2024, time.March, 10), date(2024, time.March, 4)},
		{"crosses_month_boundary", date(2024, time.May, 1), date(2024, time.April, 29)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := Window(models.BudgetPeriodWeekly, tc.now)
			testutil.AssertNoError(t, err)
			if !start.Equal(tc.wantStart) {
				t.Errorf("expected start %v, got %v", tc.wantStart, start)
			}
			if start.Weekday() != time.Monday {
				t.Errorf("expected window to start on Monday, got %s", start.Weekday())
			}
			if got := end.Sub(start); got != 6*24*time.Hour {
				t.Errorf("expected 7-day window, got span %v", got)
			}
		})
	}
}

func TestWindowMonthly(t *testing.T) {
	cases := []struct {
		name    string
		now     time.Time
		wantEnd time.Time
	}{
		{"january_31_days", date(2024, time.January, 15), date(2024, time.January, 31)},
		{"april_30_days", date(2024, time.April, 1), date(2024, time.April, 30)},
		{"february_leap_year", date(2024, time.February, 10), date(2024, time.February, 29)},
		{"february_non_leap_year", date(2023, time.February, 10), date(2023, time.February, 28)},
		{"december_year_boundary", date(2024, time.December, 31), date(2024, time.December, 31)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := Window(models.BudgetPeriodMonthly, tc.now)
			testutil.AssertNoError(t, err)
			if start.Day() != 1 {
				t.Errorf("expected start on day 1, got day %d", start.Day())
			}
			if start.Month() != tc.now.Month() || start.Year() != tc.now.Year() {
				t.Errorf("expected start in %v %d, got %v", tc.now.Month(), tc.now.Year(), start)
			}
			if !end.Equal(tc.wantEnd) {
				t.Errorf("expected end %v, got %v", tc.wantEnd, end)
			}
		})
	}
}

func TestWindowYearly(t *testing.T) {
	start, end, err := Window(models.BudgetPeriodYearly, date(2025, time.June, 17))
	testutil.AssertNoError(t, err)

	if !start.Equal(date(2025, time.January, 1)) {
		t.Errorf("expected Jan 1, got %v", start)
	}
	if !end.Equal(date(2025, time.December, 31)) {
		t.Errorf("expected Dec 31, got %v", end)
	}
}

func TestWindowInvalidPeriod(t *testing.T) {
	_, _, err := Window(models.BudgetPeriod("Fortnightly"), time.Now())
	testutil.AssertAppError(t, err, "INVALID_PERIOD")
}

func TestMonthToDate(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)
	start, end := MonthToDate(now)

	if !start.Equal(date(2024, time.March, 1)) {
		t.Errorf("expected start March 1, got %v", start)
	}
	if end.Day() != 15 || end.Hour() != 23 {
		t.Errorf("expected end of March 15, got %v", end)
	}
}

func TestDaysUntil(t *testing.T) {
	now := date(2024, time.March, 10)

	if got := DaysUntil(date(2024, time.March, 17), now); got != 7 {
		t.Errorf("expected 7 days, got %d", got)
	}
	if got := DaysUntil(date(2024, time.March, 10), now); got != 0 {
		t.Errorf("expected 0 days for same day, got %d", got)
	}
	if got := DaysUntil(date(2024, time.March, 8), now); got != -2 {
		t.Errorf("expected -2 days for past due, got %d", got)
	}
}
