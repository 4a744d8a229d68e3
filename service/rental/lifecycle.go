package rental

import (
	"time"

	"bookstore/model"
)

// State classifies a rental record against an instant in time.
type State string

const (
	StateActive       State = "active"
	StateExpiringSoon State = "expiring_soon"
	StateExpired      State = "expired"
)

// DefaultWarnWindow is how close to the end date a rental counts as
// expiring soon.
const DefaultWarnWindow = 72 * time.Hour

// EndDate computes the rental end date for a period starting at now.
// Month periods use calendar addition with native date normalization
// (Jan 31 + 1 month rolls forward past February).
func EndDate(now time.Time, period model.RentalPeriod) time.Time {
	switch period {
	case model.Period2Weeks:
		return now.AddDate(0, 0, 14)
	case model.Period1Month:
		return now.AddDate(0, 1, 0)
	case model.Period3Months:
		return now.AddDate(0, 3, 0)
	}
	return now
}

// DaysLeft returns the remaining time in whole days, rounded up.
// Expired records report 0.
func DaysLeft(end, now time.Time) int {
	if !end.After(now) {
		return 0
	}
	d := end.Sub(now)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Classify puts a record into exactly one state. A record is expired
// once its end date is at or before now, expiring-soon while the end
// date is in the future but within the warning window.
func Classify(rec model.RentalRecord, now time.Time, warn time.Duration) (State, int) {
	if !rec.EndDate.After(now) {
		return StateExpired, 0
	}
	days := DaysLeft(rec.EndDate, now)
	if rec.EndDate.Sub(now) <= warn {
		return StateExpiringSoon, days
	}
	return StateActive, days
}
