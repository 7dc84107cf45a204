package common

import "sync"

// HeightSource gives the current block height. The governance engine reads
// the time from it and never advances it.
type HeightSource interface {
	Height() uint64
}

// FixedHeight is the height source of a host which executes every call at a
// known block, like the command line.
type FixedHeight uint64

func (h FixedHeight) Height() uint64 {
	return uint64(h)
}

// ManualHeight is a monotonic height source advanced by its owner.
type ManualHeight struct {
	sync.RWMutex

	height uint64
}

func NewManualHeight(height uint64) *ManualHeight {
	return &ManualHeight{height: height}
}

func (m *ManualHeight) Height() uint64 {
	m.RLock()
	defer m.RUnlock()

	return m.height
}

// Advance moves the height forward by n blocks.
func (m *ManualHeight) Advance(n uint64) uint64 {
	m.Lock()
	defer m.Unlock()

	m.height = SaturatingAddUint64(m.height, n)

	return m.height
}

// Set moves the height to h; it never goes backward.
func (m *ManualHeight) Set(h uint64) {
	m.Lock()
	defer m.Unlock()

	if h > m.height {
		m.height = h
	}
}
