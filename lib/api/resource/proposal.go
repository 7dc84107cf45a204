package resource

import (
	"strconv"
	"strings"

	"github.com/nvellon/hal"

	"boscoin.io/sebak-gov/lib/governance"
)

type Proposal struct {
	p governance.Proposal
}

func NewProposal(p governance.Proposal) *Proposal {
	return &Proposal{p: p}
}

func (p Proposal) GetMap() hal.Entry {
	entry := hal.Entry{
		"id":                     p.p.ID,
		"kind":                   p.p.Kind,
		"stage":                  p.p.Stage,
		"status":                 p.p.Status,
		"start":                  p.p.Start,
		"end":                    p.p.End,
		"citizen_eligible_total": p.p.CitizenEligibleTotal,
		"hash":                   p.p.Hash(),
	}
	if p.p.InternalOrg != nil {
		entry["internal_org"] = *p.p.InternalOrg
	}

	return entry
}

func (p Proposal) Resource() *hal.Resource {
	r := hal.NewResource(p, p.LinkSelf())

	id := strconv.FormatUint(p.p.ID, 10)
	tally := strings.Replace(URLProposalTally, "{id}", id, -1)
	votes := strings.Replace(URLProposalVotes, "{id}", id, -1)

	r.AddLink("tally", hal.NewLink(strings.Replace(tally, "{stage}", string(p.p.Stage), -1)))
	r.AddLink("votes", hal.NewLink(strings.Replace(votes, "{stage}", string(p.p.Stage), -1)+"{?cursor,limit,reverse}", hal.LinkAttr{"templated": true}))

	return r
}

func (p Proposal) LinkSelf() string {
	return strings.Replace(URLProposal, "{id}", strconv.FormatUint(p.p.ID, 10), -1)
}

type Tally struct {
	id    uint64
	stage governance.Stage
	t     governance.Tally
}

func NewTally(id uint64, stage governance.Stage, t governance.Tally) *Tally {
	return &Tally{id: id, stage: stage, t: t}
}

func (t Tally) GetMap() hal.Entry {
	return hal.Entry{
		"proposal": t.id,
		"stage":    t.stage,
		"yes":      t.t.Yes,
		"no":       t.t.No,
	}
}

func (t Tally) Resource() *hal.Resource {
	r := hal.NewResource(t, t.LinkSelf())
	r.AddLink("proposal", hal.NewLink(strings.Replace(URLProposal, "{id}", strconv.FormatUint(t.id, 10), -1)))

	return r
}

func (t Tally) LinkSelf() string {
	l := strings.Replace(URLProposalTally, "{id}", strconv.FormatUint(t.id, 10), -1)
	return strings.Replace(l, "{stage}", string(t.stage), -1)
}

type Vote struct {
	v governance.VoteRecord
}

func NewVote(v governance.VoteRecord) *Vote {
	return &Vote{v: v}
}

func (v Vote) GetMap() hal.Entry {
	return hal.Entry{
		"proposal": v.v.ProposalID,
		"stage":    v.v.Stage,
		"voter":    v.v.Voter,
		"approve":  v.v.Approve,
		"height":   v.v.Height,
	}
}

func (v Vote) Resource() *hal.Resource {
	return hal.NewResource(v, v.LinkSelf())
}

func (v Vote) LinkSelf() string {
	l := strings.Replace(URLProposalVotes, "{id}", strconv.FormatUint(v.v.ProposalID, 10), -1)
	return strings.Replace(l, "{stage}", string(v.v.Stage), -1)
}
