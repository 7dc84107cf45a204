package common

import "math"

// SaturatingAddUint32 returns a+b, clamped to math.MaxUint32.
func SaturatingAddUint32(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}

	return a + b
}

// CheckedAddUint64 returns a+b and false when the sum would wrap.
func CheckedAddUint64(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}

	return a + b, true
}

// SaturatingAddUint64 returns a+b, clamped to math.MaxUint64.
func SaturatingAddUint64(a, b uint64) uint64 {
	if n, ok := CheckedAddUint64(a, b); ok {
		return n
	}

	return math.MaxUint64
}
