package governance

// ExpireResult is the outcome of the timeout of one proposal in
// `Engine.FinalizeExpired`.
type ExpireResult struct {
	ID       uint64   `json:"id"`
	Stage    Stage    `json:"stage"`
	Proposal Proposal `json:"proposal"`
	Error    error    `json:"error,omitempty"`
}

// ExpiredProposals returns the open proposals whose current stage ended,
// ordered by id.
func (e *Engine) ExpiredProposals() (expired []Proposal, err error) {
	height := e.height.Height()

	for _, id := range GetOpenProposalIDs(e.st) {
		var p Proposal
		if p, err = GetProposal(e.st, id); err != nil {
			return
		}

		if p.IsOpen() && p.IsExpired(height) {
			expired = append(expired, p)
		}
	}

	return
}

// FinalizeExpired calls the timeout of the current stage for every expired
// proposal. A failure of one proposal does not stop the others.
func (e *Engine) FinalizeExpired() (results []ExpireResult, err error) {
	var expired []Proposal
	if expired, err = e.ExpiredProposals(); err != nil {
		return
	}

	for _, p := range expired {
		result := ExpireResult{ID: p.ID, Stage: p.Stage}

		switch p.Stage {
		case StageInternal:
			result.Proposal, result.Error = e.FinalizeInternalTimeout(p.ID)
		case StageJoint:
			result.Proposal, result.Error = e.FinalizeJointTimeout(p.ID)
		case StageCitizen:
			result.Proposal, result.Error = e.FinalizeCitizenTimeout(p.ID)
		}

		if result.Error != nil {
			log.Error("failed to finalize expired proposal", "proposal", p.ID, "stage", p.Stage, "error", result.Error)
		}

		results = append(results, result)
	}

	return
}
