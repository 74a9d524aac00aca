package scanner

import "time"

// passes reports whether a file timestamp is old enough to satisfy the
// given minimum age. A zero minimum disables the dimension entirely.
// Timestamps in the future never pass: the age cannot be computed, so
// the file is conservatively left alone.
func passes(now time.Time, min time.Duration, ts time.Time) bool {
	if min == 0 {
		return true
	}
	return now.Sub(ts) > min
}
