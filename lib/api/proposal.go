package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"boscoin.io/sebak-gov/lib/api/httputils"
	"boscoin.io/sebak-gov/lib/api/resource"
	"boscoin.io/sebak-gov/lib/errors"
	"boscoin.io/sebak-gov/lib/governance"
	"boscoin.io/sebak-gov/lib/storage"
)

func parseProposalID(r *http.Request) (uint64, error) {
	s := mux.Vars(r)["id"]

	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.ProposalNotFound.Clone().SetData("proposal", s)
	}

	return id, nil
}

func parseStage(r *http.Request) (governance.Stage, error) {
	stage := governance.Stage(mux.Vars(r)["stage"])

	switch stage {
	case governance.StageInternal, governance.StageJoint, governance.StageCitizen:
		return stage, nil
	default:
		return "", errors.InvalidStage.Clone().SetData("stage", stage)
	}
}

func (api GovernanceHandlerAPI) GetProposalsHandler(w http.ResponseWriter, r *http.Request) {
	p, err := httputils.NewPageQuery(r)
	if err != nil {
		httputils.MustWriteJSON(w, http.StatusBadRequest, httputils.NewDetailedStatusProblem(http.StatusBadRequest, err.Error()))
		return
	}

	var rs []resource.Resource
	var nextCursor []byte
	{
		iterFunc, closeFunc := api.engine.Proposals(p.ListOptions())
		for {
			proposal, hasNext := iterFunc()
			if !hasNext {
				break
			}
			if uint64(len(rs)) == p.Limit() {
				nextCursor = []byte(strconv.FormatUint(proposal.ID, 10))
				break
			}
			rs = append(rs, resource.NewProposal(proposal))
		}
		closeFunc()
	}

	var nextLink string
	if nextCursor != nil {
		nextLink = p.NextLink(nextCursor)
	}

	var prevLink string
	if len(p.Cursor()) > 0 {
		prevLink = p.PrevLink(p.Cursor())
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewResourceList(rs, p.SelfLink(), nextLink, prevLink))
}

func (api GovernanceHandlerAPI) GetProposalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProposalID(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	proposal, err := api.engine.Proposal(id)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewProposal(proposal))
}

func (api GovernanceHandlerAPI) GetProposalTallyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProposalID(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	stage, err := parseStage(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	var tally governance.Tally
	switch stage {
	case governance.StageInternal:
		tally, err = api.engine.InternalTally(id)
	case governance.StageJoint:
		tally, err = api.engine.JointTally(id)
	case governance.StageCitizen:
		tally, err = api.engine.CitizenTally(id)
	}
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewTally(id, stage, tally))
}

func (api GovernanceHandlerAPI) GetProposalVotesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProposalID(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	stage, err := parseStage(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	if _, err = api.engine.Proposal(id); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	p, err := httputils.NewPageQuery(r)
	if err != nil {
		httputils.MustWriteJSON(w, http.StatusBadRequest, httputils.NewDetailedStatusProblem(http.StatusBadRequest, err.Error()))
		return
	}

	// the cursor of votes is the voter
	var options storage.ListOptions = storage.NewDefaultListOptions(p.Reverse(), nil, p.Limit()+1)
	if len(p.Cursor()) > 0 {
		options.SetCursor([]byte(governance.GetVoteKey(stage, id, string(p.Cursor()))))
	}

	var rs []resource.Resource
	var nextCursor []byte
	{
		iterFunc, closeFunc := api.engine.Votes(stage, id, options)
		for {
			vote, hasNext := iterFunc()
			if !hasNext {
				break
			}
			if uint64(len(rs)) == p.Limit() {
				nextCursor = []byte(vote.Voter)
				break
			}
			rs = append(rs, resource.NewVote(vote))
		}
		closeFunc()
	}

	var nextLink string
	if nextCursor != nil {
		nextLink = p.NextLink(nextCursor)
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewResourceList(rs, p.SelfLink(), nextLink, ""))
}

func (api GovernanceHandlerAPI) GetExpiredProposalsHandler(w http.ResponseWriter, r *http.Request) {
	expired, err := api.engine.ExpiredProposals()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	rs := []resource.Resource{}
	for _, proposal := range expired {
		rs = append(rs, resource.NewProposal(proposal))
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewResourceList(rs, r.URL.String(), "", ""))
}
