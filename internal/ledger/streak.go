package ledger

import "time"

// Streak rules: a streak stays alive when the last recorded activity was
// today or yesterday, and it may only advance once per calendar day. The
// caller evaluates these before deciding what streak value to set.

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsStreakActive reports whether the streak is still alive at now,
// i.e. the last activity was at most one calendar day ago.
func IsStreakActive(lastActive *time.Time, now time.Time) bool {
	if lastActive == nil {
		return false
	}
	gap := dateOf(now).Sub(dateOf(*lastActive)).Hours() / 24
	return gap >= 0 && gap <= 1
}

// ShouldUpdateStreak reports whether a streak update is due: true when the
// user has never been active or the last activity was on a different day.
func ShouldUpdateStreak(lastActive *time.Time, now time.Time) bool {
	if lastActive == nil {
		return true
	}
	return !dateOf(*lastActive).Equal(dateOf(now))
}

// NextStreak computes the streak value an activity at now should produce:
// unchanged if already counted today, incremented on a consecutive day,
// reset to 1 after a gap.
func NextStreak(current int, lastActive *time.Time, now time.Time) int {
	if !ShouldUpdateStreak(lastActive, now) {
		return current
	}
	if IsStreakActive(lastActive, now) {
		return current + 1
	}
	return 1
}
