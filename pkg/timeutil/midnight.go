package timeutil

import "time"

// NextMidnight returns the start of the local calendar day after now.
func NextMidnight(now time.Time) time.Time {
	local := now.Local()
	y, m, d := local.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, local.Location())
}

// UntilNextMidnight returns how long it is from now to NextMidnight(now).
// The result is always positive.
func UntilNextMidnight(now time.Time) time.Duration {
	d := NextMidnight(now).Sub(now)
	if d <= 0 {
		// Only reachable when the zone rules shift under us.
		return time.Nanosecond
	}
	return d
}
