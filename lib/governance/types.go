package governance

// Kind fixes which stages a proposal will ever pass through.
type Kind string

const (
	KindInternal Kind = "internal"
	KindJoint    Kind = "joint"
)

type Stage string

const (
	StageInternal Stage = "internal"
	StageJoint    Stage = "joint"
	StageCitizen  Stage = "citizen"
)

// Status is terminal once it is `StatusPassed` or `StatusRejected`.
type Status string

const (
	StatusVoting   Status = "voting"
	StatusPassed   Status = "passed"
	StatusRejected Status = "rejected"
)

func (s Status) IsTerminal() bool {
	return s == StatusPassed || s == StatusRejected
}
