package governance

import (
	logging "github.com/inconshreveable/log15"

	"boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/common/keypair"
	"boscoin.io/sebak-gov/lib/errors"
	"boscoin.io/sebak-gov/lib/registry"
	"boscoin.io/sebak-gov/lib/storage"
)

// ProposalChecker carries one governance operation through its
// `CheckerFunc`s. Every func reads and writes through `Storage`, the
// transaction of the operation, so nothing is stored unless all of them
// succeed.
type ProposalChecker struct {
	common.DefaultChecker

	Storage     *storage.LevelDBBackend
	Config      Config
	Registry    registry.Registry
	Eligibility registry.Eligibility
	Height      uint64
	Log         logging.Logger

	Kind        Kind
	Stage       Stage
	ProposalID  uint64
	Org         registry.MemberID
	Voter       string
	Institution registry.MemberID
	Approve     bool

	Proposal Proposal
	Tally    Tally
	Events   []Event
}

func (checker *ProposalChecker) emit(e Event) {
	checker.Events = append(checker.Events, e)
}

func (checker *ProposalChecker) meta() EventMeta {
	return NewEventMeta(checker.Height)
}

func (checker *ProposalChecker) finalize(status Status) (err error) {
	checker.Proposal.Status = status
	if err = checker.Proposal.Save(checker.Storage); err != nil {
		return
	}

	checker.Log.Debug("proposal finalized", "status", status, "tally", checker.Tally)
	checker.emit(ProposalFinalized{
		EventMeta: checker.meta(),
		ID:        checker.Proposal.ID,
		Status:    status,
	})

	return
}

// advanceToCitizen moves the joint proposal into the citizen stage with the
// eligible voter count of now. The fields are saved together in the
// transaction of the operation.
func (checker *ProposalChecker) advanceToCitizen() (err error) {
	var eligible uint32
	if eligible, err = checker.Eligibility.EligibleVoterCount(); err != nil {
		return
	}

	checker.Proposal.Stage = StageCitizen
	checker.Proposal.Start = checker.Height
	checker.Proposal.End = common.SaturatingAddUint64(checker.Height, checker.Config.CitizenStageDuration)
	checker.Proposal.CitizenEligibleTotal = eligible

	if err = checker.Proposal.Save(checker.Storage); err != nil {
		return
	}

	checker.Log.Debug(
		"proposal advanced to citizen stage",
		"end", checker.Proposal.End,
		"eligible", eligible,
		"tally", checker.Tally,
	)
	checker.emit(ProposalAdvancedToCitizen{
		EventMeta:     checker.meta(),
		ID:            checker.Proposal.ID,
		CitizenEnd:    checker.Proposal.End,
		EligibleTotal: eligible,
	})

	return
}

// CheckOrganization checks the organization of the new internal proposal.
func CheckOrganization(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if !checker.Registry.IsValidOrganization(checker.Org) {
		err = errors.InvalidOrg.Clone().SetData("org", checker.Org)
		return
	}

	return
}

// CreateProposal allocates the id and stores the new proposal in its first
// stage.
func CreateProposal(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	var id uint64
	if id, err = NextProposalID(checker.Storage); err != nil {
		return
	}

	p := Proposal{
		ID:     id,
		Kind:   checker.Kind,
		Status: StatusVoting,
		Start:  checker.Height,
	}

	switch checker.Kind {
	case KindInternal:
		org := checker.Org
		p.Stage = StageInternal
		p.InternalOrg = &org
		p.End = common.SaturatingAddUint64(checker.Height, checker.Config.InternalStageDuration)
	case KindJoint:
		p.Stage = StageJoint
		p.End = common.SaturatingAddUint64(checker.Height, checker.Config.JointStageDuration)
	default:
		err = errors.InvalidKind.Clone().SetData("kind", checker.Kind)
		return
	}

	if err = p.Save(checker.Storage); err != nil {
		return
	}

	checker.Proposal = p
	checker.ProposalID = id
	checker.emit(ProposalCreated{
		EventMeta: checker.meta(),
		ID:        p.ID,
		Kind:      p.Kind,
		Stage:     p.Stage,
		End:       p.End,
	})

	return
}

// CheckProposalExists loads the proposal.
func CheckProposalExists(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	checker.Proposal, err = GetProposal(checker.Storage, checker.ProposalID)

	return
}

// CheckProposalVoting refuses the terminated proposal.
func CheckProposalVoting(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if !checker.Proposal.IsOpen() {
		err = errors.ProposalAlreadyFinalized.Clone().
			SetData("proposal", checker.Proposal.ID).
			SetData("status", checker.Proposal.Status)
		return
	}

	return
}

// CheckProposalKind checks the kind of proposal with `ProposalChecker.Kind`.
func CheckProposalKind(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if checker.Proposal.Kind != checker.Kind {
		err = errors.InvalidKind.Clone().
			SetData("proposal", checker.Proposal.ID).
			SetData("kind", checker.Proposal.Kind).
			SetData("expected", checker.Kind)
		return
	}

	return
}

// CheckProposalStage checks the current stage of proposal with
// `ProposalChecker.Stage`.
func CheckProposalStage(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if checker.Proposal.Stage != checker.Stage {
		err = errors.InvalidStage.Clone().
			SetData("proposal", checker.Proposal.ID).
			SetData("stage", checker.Proposal.Stage).
			SetData("expected", checker.Stage)
		return
	}

	return
}

// CheckVotingNotExpired refuses the vote after the end of stage.
func CheckVotingNotExpired(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if checker.Proposal.IsExpired(checker.Height) {
		err = errors.VoteExpired.Clone().
			SetData("proposal", checker.Proposal.ID).
			SetData("end", checker.Proposal.End).
			SetData("height", checker.Height)
		return
	}

	return
}

// CheckVotingExpired allows the timeout only after the end of stage.
func CheckVotingExpired(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if !checker.Proposal.IsExpired(checker.Height) {
		err = errors.VoteNotExpired.Clone().
			SetData("proposal", checker.Proposal.ID).
			SetData("end", checker.Proposal.End).
			SetData("height", checker.Height)
		return
	}

	return
}

// CheckInternalVoter checks the voter is an account address.
func CheckInternalVoter(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if !keypair.IsValidAddress(checker.Voter) {
		err = errors.InvalidVoter.Clone().SetData("voter", checker.Voter)
		return
	}

	return
}

// CheckInstitution checks the institution is in the registry; the voter of
// the joint stage is the institution.
func CheckInstitution(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if !checker.Registry.IsValidInstitution(checker.Institution) {
		err = errors.InvalidInstitution.Clone().SetData("institution", checker.Institution)
		return
	}
	checker.Voter = checker.Institution.String()

	return
}

// CheckCitizen checks the citizen is an account address and belongs to the
// electorate snapshotted when the proposal entered the citizen stage.
func CheckCitizen(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if !keypair.IsValidAddress(checker.Voter) {
		err = errors.InvalidVoter.Clone().SetData("citizen", checker.Voter)
		return
	}

	var eligible bool
	if eligible, err = checker.Eligibility.IsEligible(checker.Voter, checker.Proposal.CitizenEligibleTotal); err != nil {
		return
	} else if !eligible {
		err = errors.NotEligibleCitizen.Clone().SetData("citizen", checker.Voter)
		return
	}

	return
}

// CheckNotVoted refuses the second vote of the same voter.
func CheckNotVoted(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	var voted bool
	if voted, err = ExistsVote(checker.Storage, checker.Stage, checker.ProposalID, checker.Voter); err != nil {
		return
	} else if voted {
		err = errors.AlreadyVoted.Clone().
			SetData("proposal", checker.ProposalID).
			SetData("stage", checker.Stage).
			SetData("voter", checker.Voter)
		return
	}

	return
}

// RecordVote stores the `VoteRecord` and adds it to the tally of the stage.
// In the joint stage the vote counts the weight of the institution.
func RecordVote(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	var units uint32 = 1
	if checker.Stage == StageJoint {
		var found bool
		if units, found = checker.Registry.InstitutionWeight(checker.Institution); !found {
			err = errors.InvalidInstitution.Clone().SetData("institution", checker.Institution)
			return
		}
	}

	vote := VoteRecord{
		ProposalID: checker.ProposalID,
		Stage:      checker.Stage,
		Voter:      checker.Voter,
		Approve:    checker.Approve,
		Height:     checker.Height,
	}
	if err = vote.Save(checker.Storage); err != nil {
		return
	}

	if checker.Tally, err = GetTally(checker.Storage, checker.Stage, checker.ProposalID); err != nil {
		return
	}
	checker.Tally.Add(checker.Approve, units)
	if err = SaveTally(checker.Storage, checker.Stage, checker.ProposalID, checker.Tally); err != nil {
		return
	}

	checker.Log.Debug("vote recorded", "voter", checker.Voter, "approve", checker.Approve, "tally", checker.Tally)

	switch checker.Stage {
	case StageInternal:
		checker.emit(InternalVoteCast{
			EventMeta: checker.meta(),
			ID:        checker.ProposalID,
			Voter:     checker.Voter,
			Approve:   checker.Approve,
		})
	case StageJoint:
		checker.emit(JointInstitutionVoteCast{
			EventMeta:      checker.meta(),
			ID:             checker.ProposalID,
			Institution:    checker.Institution,
			InternalPassed: checker.Approve,
		})
	case StageCitizen:
		checker.emit(CitizenVoteCast{
			EventMeta: checker.meta(),
			ID:        checker.ProposalID,
			Citizen:   checker.Voter,
			Approve:   checker.Approve,
		})
	}

	return
}

// LoadTally reads the tally of the current stage for the timeout.
func LoadTally(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	checker.Tally, err = GetTally(checker.Storage, checker.Stage, checker.ProposalID)

	return
}

// DecideInternal passes the proposal at the vote which reaches the
// threshold of the organization.
func DecideInternal(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if checker.Proposal.InternalOrg == nil {
		err = errors.InvalidOrg.Clone().SetData("proposal", checker.ProposalID)
		return
	}

	org := *checker.Proposal.InternalOrg
	threshold, found := checker.Registry.OrganizationPassThreshold(org)
	if !found {
		err = errors.InvalidOrg.Clone().SetData("org", org)
		return
	}

	if checker.Tally.Yes >= threshold {
		err = checker.finalize(StatusPassed)
		return
	}

	return
}

// DecideJointUnanimity passes the proposal when the yes weight reaches the
// unanimous weight and stops the chain.
func DecideJointUnanimity(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if checker.Tally.Yes < checker.Config.UnanimousPassWeight {
		return
	}

	if err = checker.finalize(StatusPassed); err != nil {
		return
	}

	err = common.NewCheckerErrorStop("unanimously passed")

	return
}

// DecideJointExhausted advances the proposal to the citizen stage when all
// the institutions voted without the unanimity.
func DecideJointExhausted(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if checker.Tally.Total() < uint64(checker.Registry.TotalWeight()) {
		return
	}

	err = checker.advanceToCitizen()

	return
}

func (checker *ProposalChecker) citizenMajority() bool {
	pct := uint64(checker.Config.CitizenPassPercent)
	eligible := uint64(checker.Proposal.CitizenEligibleTotal)

	return eligible > 0 && uint64(checker.Tally.Yes)*100 > eligible*pct
}

// citizenResult is the result of the citizen stage counted over the cast
// votes; no vote is rejection.
func (checker *ProposalChecker) citizenResult() Status {
	pct := uint64(checker.Config.CitizenPassPercent)
	if uint64(checker.Tally.Yes)*100 > checker.Tally.Total()*pct {
		return StatusPassed
	}

	return StatusRejected
}

// DecideCitizen passes the proposal when the yes votes are more than
// `Config.CitizenPassPercent` of the snapshotted electorate. Only that
// electorate can vote, so when the votes reach it every eligible citizen
// voted and the proposal is resolved like the timeout.
func DecideCitizen(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if checker.citizenMajority() {
		err = checker.finalize(StatusPassed)
		return
	}

	eligible := uint64(checker.Proposal.CitizenEligibleTotal)
	if eligible > 0 && checker.Tally.Total() >= eligible {
		err = checker.finalize(checker.citizenResult())
		return
	}

	return
}

// ResolveInternalTimeout always rejects; the internal proposal which reached
// the threshold was already passed by the vote.
func ResolveInternalTimeout(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	err = checker.finalize(StatusRejected)

	return
}

// ResolveJointTimeout passes the unanimous proposal, otherwise advances it to
// the citizen stage. It never rejects.
func ResolveJointTimeout(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	if checker.Tally.Yes >= checker.Config.UnanimousPassWeight {
		err = checker.finalize(StatusPassed)
		return
	}

	err = checker.advanceToCitizen()

	return
}

func ResolveCitizenTimeout(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ProposalChecker)

	err = checker.finalize(checker.citizenResult())

	return
}

var (
	CreateInternalProposalCheckerFuncs = []common.CheckerFunc{
		CheckOrganization,
		CreateProposal,
	}

	CreateJointProposalCheckerFuncs = []common.CheckerFunc{
		CreateProposal,
	}

	InternalVoteCheckerFuncs = []common.CheckerFunc{
		CheckProposalExists,
		CheckProposalVoting,
		CheckProposalKind,
		CheckProposalStage,
		CheckVotingNotExpired,
		CheckInternalVoter,
		CheckNotVoted,
		RecordVote,
		DecideInternal,
	}

	JointVoteCheckerFuncs = []common.CheckerFunc{
		CheckProposalExists,
		CheckProposalVoting,
		CheckProposalKind,
		CheckProposalStage,
		CheckVotingNotExpired,
		CheckInstitution,
		CheckNotVoted,
		RecordVote,
		DecideJointUnanimity,
		DecideJointExhausted,
	}

	CitizenVoteCheckerFuncs = []common.CheckerFunc{
		CheckProposalExists,
		CheckProposalVoting,
		CheckProposalKind,
		CheckProposalStage,
		CheckVotingNotExpired,
		CheckCitizen,
		CheckNotVoted,
		RecordVote,
		DecideCitizen,
	}

	InternalTimeoutCheckerFuncs = []common.CheckerFunc{
		CheckProposalExists,
		CheckProposalVoting,
		CheckProposalKind,
		CheckProposalStage,
		CheckVotingExpired,
		LoadTally,
		ResolveInternalTimeout,
	}

	JointTimeoutCheckerFuncs = []common.CheckerFunc{
		CheckProposalExists,
		CheckProposalVoting,
		CheckProposalKind,
		CheckProposalStage,
		CheckVotingExpired,
		LoadTally,
		ResolveJointTimeout,
	}

	CitizenTimeoutCheckerFuncs = []common.CheckerFunc{
		CheckProposalExists,
		CheckProposalVoting,
		CheckProposalKind,
		CheckProposalStage,
		CheckVotingExpired,
		LoadTally,
		ResolveCitizenTimeout,
	}
)
