package common

import "time"

const (
	// BlockTime is the expected interval between two blocks; stage durations
	// are counted in blocks, so they are derived from it.
	BlockTime time.Duration = 5 * time.Second
)

// BlocksIn converts d into the number of blocks produced in d, rounded up.
func BlocksIn(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}

	n := uint64(d / BlockTime)
	if d%BlockTime != 0 {
		n++
	}

	return n
}
