package governance

import (
	"boscoin.io/sebak-gov/lib/registry"
)

// SubmitJointInstitutionVote counts the weight of institution with the
// result of its internal vote. The proposal passes when the yes weight
// reaches `Config.UnanimousPassWeight`; when every institution voted without
// the unanimity, it advances to the citizen stage.
func (e *Engine) SubmitJointInstitutionVote(id uint64, institution registry.MemberID, internalPassed bool) (Proposal, error) {
	checker := e.newChecker(JointVoteCheckerFuncs, KindJoint, StageJoint, id)
	checker.Institution = institution
	checker.Approve = internalPassed

	if err := e.run("submit-joint-institution-vote", checker); err != nil {
		return Proposal{}, err
	}

	return checker.Proposal, nil
}

// FinalizeJointTimeout passes the unanimous proposal after the end of stage,
// otherwise advances it to the citizen stage.
func (e *Engine) FinalizeJointTimeout(id uint64) (Proposal, error) {
	checker := e.newChecker(JointTimeoutCheckerFuncs, KindJoint, StageJoint, id)

	if err := e.run("finalize-joint-timeout", checker); err != nil {
		return Proposal{}, err
	}

	return checker.Proposal, nil
}
