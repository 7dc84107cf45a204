package governance

// CastInternalVote counts the vote of the account voter. The proposal passes
// in the same call when the yes votes reach the threshold of the
// organization.
func (e *Engine) CastInternalVote(voter string, id uint64, approve bool) (Proposal, error) {
	checker := e.newChecker(InternalVoteCheckerFuncs, KindInternal, StageInternal, id)
	checker.Voter = voter
	checker.Approve = approve

	if err := e.run("cast-internal-vote", checker); err != nil {
		return Proposal{}, err
	}

	return checker.Proposal, nil
}

// FinalizeInternalTimeout rejects the internal proposal after the end of
// stage, whatever the tally is.
func (e *Engine) FinalizeInternalTimeout(id uint64) (Proposal, error) {
	checker := e.newChecker(InternalTimeoutCheckerFuncs, KindInternal, StageInternal, id)

	if err := e.run("finalize-internal-timeout", checker); err != nil {
		return Proposal{}, err
	}

	return checker.Proposal, nil
}
