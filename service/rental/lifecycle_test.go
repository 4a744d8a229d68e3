package rental

import (
	"testing"
	"time"

	"bookstore/model"

	"github.com/stretchr/testify/require"
)

func TestEndDate_TwoWeeks(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	end := EndDate(now, model.Period2Weeks)
	require.Equal(t, now.Add(14*24*time.Hour), end)
}

func TestEndDate_CalendarMonths(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 7, 15, 9, 30, 0, 0, time.UTC), EndDate(now, model.Period1Month))
	require.Equal(t, time.Date(2024, 9, 15, 9, 30, 0, 0, time.UTC), EndDate(now, model.Period3Months))
}

func TestEndDate_MonthRollover(t *testing.T) {
	// Jan 31 + 1 month normalizes past February rather than clamping.
	now := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), EndDate(now, model.Period1Month))

	now = time.Date(2023, 11, 30, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), EndDate(now, model.Period3Months))
}

func TestDaysLeft(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, 0, DaysLeft(now, now))
	require.Equal(t, 0, DaysLeft(now.Add(-time.Hour), now))
	require.Equal(t, 1, DaysLeft(now.Add(time.Minute), now))
	require.Equal(t, 1, DaysLeft(now.Add(24*time.Hour), now))
	require.Equal(t, 2, DaysLeft(now.Add(24*time.Hour+time.Second), now))
	require.Equal(t, 14, DaysLeft(now.Add(14*24*time.Hour), now))
}

func TestClassify(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rec := func(end time.Time) model.RentalRecord {
		return model.RentalRecord{EndDate: end, Period: model.Period2Weeks}
	}

	state, days := Classify(rec(now.Add(10*24*time.Hour)), now, DefaultWarnWindow)
	require.Equal(t, StateActive, state)
	require.Equal(t, 10, days)

	// inside the 72h warning window, still in the future
	state, days = Classify(rec(now.Add(48*time.Hour)), now, DefaultWarnWindow)
	require.Equal(t, StateExpiringSoon, state)
	require.Equal(t, 2, days)

	// boundary: exactly at the warning window edge counts as expiring
	state, _ = Classify(rec(now.Add(DefaultWarnWindow)), now, DefaultWarnWindow)
	require.Equal(t, StateExpiringSoon, state)

	// end date at now is expired, not expiring
	state, days = Classify(rec(now), now, DefaultWarnWindow)
	require.Equal(t, StateExpired, state)
	require.Equal(t, 0, days)

	state, days = Classify(rec(now.Add(-time.Hour)), now, DefaultWarnWindow)
	require.Equal(t, StateExpired, state)
	require.Equal(t, 0, days)
}
