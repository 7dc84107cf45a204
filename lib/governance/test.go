package governance

import (
	"sync"

	"boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/registry"
	"boscoin.io/sebak-gov/lib/storage"
)

// RecordingSink keeps the emitted events in order.
type RecordingSink struct {
	sync.RWMutex

	events []Event
}

func (r *RecordingSink) Emit(e Event) {
	r.Lock()
	defer r.Unlock()

	r.events = append(r.events, e)
}

func (r *RecordingSink) Events() []Event {
	r.RLock()
	defer r.RUnlock()

	events := make([]Event, len(r.events))
	copy(events, r.events)

	return events
}

func (r *RecordingSink) Types() (types []EventType) {
	for _, e := range r.Events() {
		types = append(types, e.Type())
	}

	return
}

func (r *RecordingSink) Reset() {
	r.Lock()
	defer r.Unlock()

	r.events = nil
}

// NewTestEngine creates the `Engine` over the memory storage.
func NewTestEngine(
	config Config,
	reg registry.Registry,
	eligibility registry.Eligibility,
	height uint64,
) (*Engine, *storage.LevelDBBackend, *common.ManualHeight, *RecordingSink) {
	st, err := storage.NewTestMemoryLevelDBBackend()
	if err != nil {
		panic(err)
	}

	manual := common.NewManualHeight(height)
	sink := &RecordingSink{}

	engine, err := NewEngine(st, config, reg, eligibility, manual, sink)
	if err != nil {
		panic(err)
	}

	return engine, st, manual, sink
}

// NewTestConfig has short stages, in blocks.
func NewTestConfig(unanimous uint32) Config {
	return Config{
		InternalStageDuration: 10,
		JointStageDuration:    20,
		CitizenStageDuration:  30,
		UnanimousPassWeight:   unanimous,
		CitizenPassPercent:    DefaultCitizenPassPercent,
	}
}
