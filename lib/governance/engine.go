package governance

import (
	"sync"

	logging "github.com/inconshreveable/log15"

	"boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/metrics"
	"boscoin.io/sebak-gov/lib/registry"
	"boscoin.io/sebak-gov/lib/storage"
)

// Engine is the staged voting state machine. The calls are linearized by
// the lock and each one runs in a single storage transaction; the events of
// a call are emitted only after the transaction is committed.
//
// The engine reads the time from `common.HeightSource` and never advances
// it. The timeouts are resolved only by the explicit calls of
// `FinalizeInternalTimeout`, `FinalizeJointTimeout`,
// `FinalizeCitizenTimeout` or `FinalizeExpired`.
type Engine struct {
	sync.Mutex

	st          *storage.LevelDBBackend
	config      Config
	registry    registry.Registry
	eligibility registry.Eligibility
	height      common.HeightSource
	sink        EventSink
}

func NewEngine(
	st *storage.LevelDBBackend,
	config Config,
	reg registry.Registry,
	eligibility registry.Eligibility,
	height common.HeightSource,
	sink EventSink,
) (*Engine, error) {
	if err := config.Validate(reg); err != nil {
		return nil, err
	}

	if sink == nil {
		sink = NopSink{}
	}

	return &Engine{
		st:          st,
		config:      config,
		registry:    reg,
		eligibility: eligibility,
		height:      height,
		sink:        sink,
	}, nil
}

func (e *Engine) Config() Config {
	return e.config
}

func (e *Engine) Registry() registry.Registry {
	return e.registry
}

func (e *Engine) newChecker(funcs []common.CheckerFunc, kind Kind, stage Stage, id uint64) *ProposalChecker {
	return &ProposalChecker{
		DefaultChecker: common.DefaultChecker{Funcs: funcs},
		Config:         e.config,
		Registry:       e.registry,
		Eligibility:    e.eligibility,
		Kind:           kind,
		Stage:          stage,
		ProposalID:     id,
	}
}

// run executes the checker in a new transaction. On any error the
// transaction is discarded and nothing is emitted.
func (e *Engine) run(operation string, checker *ProposalChecker) (err error) {
	e.Lock()
	defer e.Unlock()

	checker.Height = e.height.Height()
	checker.Log = log.New(logging.Ctx{
		"operation": operation,
		"proposal":  checker.ProposalID,
		"height":    checker.Height,
	})

	var ts *storage.LevelDBBackend
	if ts, err = e.st.OpenTransaction(); err != nil {
		return
	}
	checker.Storage = ts

	defer func() {
		if err == nil {
			return
		}

		ts.Discard()
		metrics.Governance.AddRejectedCall()
		checker.Log.Debug("rejected", "error", err)
	}()

	if err = common.RunChecker(checker, common.DefaultDeferFunc); err != nil {
		if !common.IsCheckerErrorStop(err) {
			return
		}
		err = nil
	}

	if err = ts.Commit(); err != nil {
		return
	}

	for _, event := range checker.Events {
		observeEvent(event)
		e.sink.Emit(event)
	}

	return
}

func observeEvent(event Event) {
	switch ev := event.(type) {
	case ProposalCreated:
		metrics.Governance.AddProposalCreated(string(ev.Kind))
	case InternalVoteCast:
		metrics.Governance.AddVote(string(StageInternal))
	case JointInstitutionVoteCast:
		metrics.Governance.AddVote(string(StageJoint))
	case CitizenVoteCast:
		metrics.Governance.AddVote(string(StageCitizen))
	case ProposalFinalized:
		metrics.Governance.AddProposalFinalized(string(ev.Status))
		log.Info("proposal finalized", "proposal", ev.ID, "status", ev.Status)
	case ProposalAdvancedToCitizen:
		metrics.Governance.AddProposalAdvanced(ev.EligibleTotal)
		log.Info(
			"proposal advanced to citizen stage",
			"proposal", ev.ID,
			"end", ev.CitizenEnd,
			"eligible", ev.EligibleTotal,
		)
	}
}

// CreateInternalProposal opens the internal vote of org.
func (e *Engine) CreateInternalProposal(org registry.MemberID) (Proposal, error) {
	checker := e.newChecker(CreateInternalProposalCheckerFuncs, KindInternal, StageInternal, 0)
	checker.Org = org

	if err := e.run("create-internal-proposal", checker); err != nil {
		return Proposal{}, err
	}

	log.Info("internal proposal created", "proposal", checker.Proposal.ID, "org", org, "end", checker.Proposal.End)

	return checker.Proposal, nil
}

func (e *Engine) CreateJointProposal() (Proposal, error) {
	checker := e.newChecker(CreateJointProposalCheckerFuncs, KindJoint, StageJoint, 0)

	if err := e.run("create-joint-proposal", checker); err != nil {
		return Proposal{}, err
	}

	log.Info("joint proposal created", "proposal", checker.Proposal.ID, "end", checker.Proposal.End)

	return checker.Proposal, nil
}

func (e *Engine) Proposal(id uint64) (Proposal, error) {
	return GetProposal(e.st, id)
}

func (e *Engine) InternalTally(id uint64) (Tally, error) {
	return e.tally(StageInternal, id)
}

func (e *Engine) JointTally(id uint64) (Tally, error) {
	return e.tally(StageJoint, id)
}

func (e *Engine) CitizenTally(id uint64) (Tally, error) {
	return e.tally(StageCitizen, id)
}

func (e *Engine) tally(stage Stage, id uint64) (Tally, error) {
	if _, err := GetProposal(e.st, id); err != nil {
		return Tally{}, err
	}

	return GetTally(e.st, stage, id)
}

// HasVoted reports whether voter voted for the proposal in stage; voter of
// the joint stage is the institution id.
func (e *Engine) HasVoted(stage Stage, id uint64, voter string) (bool, error) {
	return ExistsVote(e.st, stage, id, voter)
}

func (e *Engine) Votes(stage Stage, id uint64, options storage.ListOptions) (func() (VoteRecord, bool), func()) {
	return GetVotes(e.st, stage, id, options)
}

func (e *Engine) Proposals(options storage.ListOptions) (func() (Proposal, bool), func()) {
	return GetProposals(e.st, options)
}
