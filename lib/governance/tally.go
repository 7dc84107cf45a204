package governance

import (
	"fmt"

	"boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/errors"
	"boscoin.io/sebak-gov/lib/storage"
)

// Tally is the yes and no counter of a proposal in one stage; units are
// votes in the internal and citizen stages and weights in the joint stage.
//
// models
//  * 'gt-<Stage>-<Proposal.ID>': `Tally`
const TallyPrefix string = "gt-"

type Tally struct {
	Yes uint32 `json:"yes"`
	No  uint32 `json:"no"`
}

// Add counts units to yes or no; the counter clamps at the maximum.
func (t *Tally) Add(approve bool, units uint32) {
	if approve {
		t.Yes = common.SaturatingAddUint32(t.Yes, units)
	} else {
		t.No = common.SaturatingAddUint32(t.No, units)
	}
}

// Total is yes + no without overflow.
func (t Tally) Total() uint64 {
	return uint64(t.Yes) + uint64(t.No)
}

func (t Tally) String() string {
	return string(common.MustMarshalJSON(t))
}

func GetTallyKey(stage Stage, id uint64) string {
	return fmt.Sprintf("%s%s-%020d", TallyPrefix, stage, id)
}

// GetTally returns the zero `Tally` when nothing was voted yet.
func GetTally(st *storage.LevelDBBackend, stage Stage, id uint64) (t Tally, err error) {
	if err = st.Get(GetTallyKey(stage, id), &t); err == errors.StorageRecordDoesNotExist {
		err = nil
	}

	return
}

func SaveTally(st *storage.LevelDBBackend, stage Stage, id uint64, t Tally) (err error) {
	key := GetTallyKey(stage, id)

	var exists bool
	if exists, err = st.Has(key); err != nil {
		return
	}

	if exists {
		err = st.Set(key, t)
	} else {
		err = st.New(key, t)
	}

	return
}
