package stats

import "time"

// StreakPolicy decides what a missed day does to the streak.
type StreakPolicy int

const (
	// StreakKeepOnGap counts practice days and never resets.
	StreakKeepOnGap StreakPolicy = iota

	// StreakResetOnGap restarts at 1 when the previous practice day is not
	// yesterday.
	StreakResetOnGap
)

// ParseStreakPolicy maps the TESTPLUS_STREAK_RESET value to a policy.
func ParseStreakPolicy(v string) StreakPolicy {
	switch v {
	case "1", "true", "yes", "on":
		return StreakResetOnGap
	}
	return StreakKeepOnGap
}

func (p StreakPolicy) String() string {
	if p == StreakResetOnGap {
		return "reset-on-gap"
	}
	return "keep-on-gap"
}

// sameDay reports whether a and b fall on the same calendar day in loc.
func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// nextStreak returns the streak after practicing at now.
func (p StreakPolicy) nextStreak(current int, last *time.Time, now time.Time, loc *time.Location) int {
	if last != nil && sameDay(*last, now, loc) {
		return current
	}
	if p == StreakResetOnGap && last != nil {
		y, m, d := now.In(loc).Date()
		yesterday := time.Date(y, m, d-1, 12, 0, 0, 0, loc)
		if !sameDay(*last, yesterday, loc) {
			return 1
		}
	}
	return current + 1
}
