package ledger

import "time"

// NextID derives an id from the creation time, bumped past last when the clock
// has not moved on (or went backwards).
func NextID(now time.Time, last int64) int64 {
	id := now.UnixMilli()
	if id <= last {
		return last + 1
	}
	return id
}
