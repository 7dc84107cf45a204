package governance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/sebak-gov/lib/errors"
	"boscoin.io/sebak-gov/lib/registry"
	"boscoin.io/sebak-gov/lib/storage"
)

func TestProposalSaveOpenIndex(t *testing.T) {
	st, _ := storage.NewTestMemoryLevelDBBackend()
	defer st.Close()

	p := Proposal{ID: 3, Kind: KindJoint, Stage: StageJoint, Status: StatusVoting, End: 10}
	require.NoError(t, p.Save(st))
	require.Equal(t, []uint64{3}, GetOpenProposalIDs(st))

	p.Status = StatusPassed
	require.NoError(t, p.Save(st))
	require.Empty(t, GetOpenProposalIDs(st))

	stored, err := GetProposal(st, 3)
	require.NoError(t, err)
	require.Equal(t, StatusPassed, stored.Status)

	_, err = GetProposal(st, 4)
	require.True(t, errors.ProposalNotFound.Is(err))
}

func TestProposalHash(t *testing.T) {
	p := Proposal{ID: 1, Kind: KindJoint, Stage: StageJoint, Status: StatusVoting, End: 10}

	h := p.Hash()
	require.NotEmpty(t, h)
	require.Equal(t, h, p.Hash())

	p.Stage = StageCitizen
	require.NotEqual(t, h, p.Hash())

	org := registry.NationalBodyID
	internal := Proposal{ID: 1, Kind: KindInternal, Stage: StageInternal, Status: StatusVoting, InternalOrg: &org, End: 10}
	require.NotPanics(t, func() { internal.Hash() })
	require.NotEqual(t, internal.Hash(), Proposal{ID: 1, Kind: KindInternal, Stage: StageInternal, Status: StatusVoting, End: 10}.Hash())
}

func TestNextProposalIDOverflow(t *testing.T) {
	st, _ := storage.NewTestMemoryLevelDBBackend()
	defer st.Close()

	id, err := NextProposalID(st)
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	require.NoError(t, st.Set(ProposalLastIDKey, uint64(math.MaxUint64)))

	_, err = NextProposalID(st)
	require.True(t, errors.AllocationOverflow.Is(err))
}

func TestEngineAllocationOverflow(t *testing.T) {
	j := newJointTestEngine(t, 0)

	require.NoError(t, j.st.New(ProposalLastIDKey, uint64(math.MaxUint64)))

	_, err := j.engine.CreateJointProposal()
	require.True(t, errors.AllocationOverflow.Is(err))
	require.Empty(t, j.sink.Events())
}

func TestEngineProposals(t *testing.T) {
	j := newJointTestEngine(t, 0)

	for i := 0; i < 5; i++ {
		_, err := j.engine.CreateJointProposal()
		require.NoError(t, err)
	}

	collect := func(options storage.ListOptions) (ids []uint64) {
		iterFunc, closeFunc := j.engine.Proposals(options)
		defer closeFunc()

		for {
			p, hasNext := iterFunc()
			if !hasNext {
				break
			}
			ids = append(ids, p.ID)
		}
		return
	}

	require.Equal(t, []uint64{1, 2, 3, 4, 5}, collect(nil))
	require.Equal(t, []uint64{5, 4, 3, 2, 1}, collect(storage.NewDefaultListOptions(true, nil, 0)))
	require.Equal(t, []uint64{3, 4}, collect(storage.NewDefaultListOptions(false, []byte("3"), 2)))
	require.Equal(t, []uint64{3, 2, 1}, collect(storage.NewDefaultListOptions(true, []byte("3"), 0)))
	require.Empty(t, collect(storage.NewDefaultListOptions(false, []byte("findme"), 0)))
}

func TestTallyAddSaturates(t *testing.T) {
	tally := Tally{Yes: math.MaxUint32 - 1}

	tally.Add(true, 5)
	require.Equal(t, uint32(math.MaxUint32), tally.Yes)

	tally.Add(false, math.MaxUint32)
	tally.Add(false, 1)
	require.Equal(t, uint32(math.MaxUint32), tally.No)
	require.Equal(t, uint64(2*uint64(math.MaxUint32)), tally.Total())
}

func TestVoteRecordWriteOnce(t *testing.T) {
	st, _ := storage.NewTestMemoryLevelDBBackend()
	defer st.Close()

	v := VoteRecord{ProposalID: 1, Stage: StageInternal, Voter: "a", Approve: true}
	require.NoError(t, v.Save(st))

	v.Approve = false
	require.True(t, errors.AlreadyVoted.Is(v.Save(st)))

	stored, err := GetVote(st, StageInternal, 1, "a")
	require.NoError(t, err)
	require.True(t, stored.Approve)

	// the stages are separated
	v.Stage = StageCitizen
	require.NoError(t, v.Save(st))
}
