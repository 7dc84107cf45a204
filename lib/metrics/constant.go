package metrics

const (
	Namespace           = "sebak_gov"
	GovernanceSubsystem = "governance"
	APISubsystem        = "api"
)

const (
	LabelKind   = "kind"
	LabelStage  = "stage"
	LabelStatus = "status"
)
