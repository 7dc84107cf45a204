package governance

// CastCitizenVote counts the vote of the eligible citizen in the citizen
// stage of the joint proposal.
func (e *Engine) CastCitizenVote(citizen string, id uint64, approve bool) (Proposal, error) {
	checker := e.newChecker(CitizenVoteCheckerFuncs, KindJoint, StageCitizen, id)
	checker.Voter = citizen
	checker.Approve = approve

	if err := e.run("cast-citizen-vote", checker); err != nil {
		return Proposal{}, err
	}

	return checker.Proposal, nil
}

// FinalizeCitizenTimeout resolves the citizen stage after its end. The
// proposal passes when the yes votes are more than
// `Config.CitizenPassPercent` of the cast votes, otherwise it is rejected.
func (e *Engine) FinalizeCitizenTimeout(id uint64) (Proposal, error) {
	checker := e.newChecker(CitizenTimeoutCheckerFuncs, KindJoint, StageCitizen, id)

	if err := e.run("finalize-citizen-timeout", checker); err != nil {
		return Proposal{}, err
	}

	return checker.Proposal, nil
}
