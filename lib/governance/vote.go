package governance

import (
	"fmt"

	"boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/errors"
	"boscoin.io/sebak-gov/lib/storage"
)

// VoteRecord is written once for the voter of a proposal in one stage. The
// voter is the account address for the internal and citizen stages and the
// institution id for the joint stage.
//
// models
//  * 'gv-<Stage>-<Proposal.ID>-<voter>': `VoteRecord`
const VotePrefix string = "gv-"

type VoteRecord struct {
	ProposalID uint64 `json:"proposal"`
	Stage      Stage  `json:"stage"`
	Voter      string `json:"voter"`
	Approve    bool   `json:"approve"`
	Height     uint64 `json:"height"`
}

func (v VoteRecord) String() string {
	return string(common.MustMarshalJSON(v))
}

// Save fails with `errors.AlreadyVoted` when the voter already voted.
func (v VoteRecord) Save(st *storage.LevelDBBackend) (err error) {
	if err = st.New(GetVoteKey(v.Stage, v.ProposalID, v.Voter), v); err == errors.StorageRecordAlreadyExists {
		err = errors.AlreadyVoted.Clone().
			SetData("proposal", v.ProposalID).
			SetData("stage", v.Stage).
			SetData("voter", v.Voter)
	}

	return
}

func GetVoteKey(stage Stage, id uint64, voter string) string {
	return fmt.Sprintf("%s%s-%020d-%s", VotePrefix, stage, id, voter)
}

func ExistsVote(st *storage.LevelDBBackend, stage Stage, id uint64, voter string) (bool, error) {
	return st.Has(GetVoteKey(stage, id, voter))
}

func GetVote(st *storage.LevelDBBackend, stage Stage, id uint64, voter string) (v VoteRecord, err error) {
	err = st.Get(GetVoteKey(stage, id, voter), &v)
	return
}

// GetVotes iterates the votes of a proposal in one stage ordered by voter.
func GetVotes(st *storage.LevelDBBackend, stage Stage, id uint64, options storage.ListOptions) (func() (VoteRecord, bool), func()) {
	iterFunc, closeFunc := st.GetIterator(fmt.Sprintf("%s%s-%020d-", VotePrefix, stage, id), options)

	return (func() (VoteRecord, bool) {
			item, hasNext := iterFunc()
			if !hasNext {
				return VoteRecord{}, false
			}

			var v VoteRecord
			common.MustUnmarshalJSON(item.Value, &v)
			return v, hasNext
		}), (func() {
			closeFunc()
		})
}
