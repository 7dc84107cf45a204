package governance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/sebak-gov/lib/common/keypair"
	"boscoin.io/sebak-gov/lib/errors"
)

func TestFinalizeExpired(t *testing.T) {
	j := newJointTestEngine(t, 5)

	internal, _ := j.engine.CreateInternalProposal(institutionA)
	joint, _ := j.engine.CreateJointProposal()
	passed, _ := j.engine.CreateJointProposal()
	j.engine.SubmitJointInstitutionVote(passed.ID, institutionA, true)
	j.engine.SubmitJointInstitutionVote(passed.ID, institutionB, true)

	expired, err := j.engine.ExpiredProposals()
	require.NoError(t, err)
	require.Empty(t, expired)

	// only the internal proposal is expired
	j.setHeight(internal.End + 1)
	expired, _ = j.engine.ExpiredProposals()
	require.Equal(t, 1, len(expired))
	require.Equal(t, internal.ID, expired[0].ID)

	j.setHeight(joint.End + 1)
	results, err := j.engine.FinalizeExpired()
	require.NoError(t, err)
	require.Equal(t, 2, len(results))

	require.Equal(t, internal.ID, results[0].ID)
	require.NoError(t, results[0].Error)
	require.Equal(t, StatusRejected, results[0].Proposal.Status)

	require.Equal(t, joint.ID, results[1].ID)
	require.Equal(t, StageJoint, results[1].Stage)
	require.NoError(t, results[1].Error)
	require.Equal(t, StageCitizen, results[1].Proposal.Stage)
	require.Equal(t, uint32(5), results[1].Proposal.CitizenEligibleTotal)

	// the citizen stage has its own end
	results, _ = j.engine.FinalizeExpired()
	require.Empty(t, results)

	p, _ := j.engine.Proposal(joint.ID)
	address := keypair.Random().Address()
	j.eligibility.Register(address)
	_, err = j.engine.CastCitizenVote(address, p.ID, true)
	require.NoError(t, err)

	j.setHeight(p.End + 1)
	results, _ = j.engine.FinalizeExpired()
	require.Equal(t, 1, len(results))
	require.Equal(t, StageCitizen, results[0].Stage)
	require.Equal(t, StatusPassed, results[0].Proposal.Status)

	results, _ = j.engine.FinalizeExpired()
	require.Empty(t, results)

	_, err = j.engine.FinalizeCitizenTimeout(p.ID)
	require.True(t, errors.ProposalAlreadyFinalized.Is(err))
}
