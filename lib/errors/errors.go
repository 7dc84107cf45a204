package errors

// pre-defined `Error`s; the rejection of a governance call is always one of
// these, or a `Clone()` of one with additional `Data`.
var (
	ProposalNotFound         = NewError(100, "proposal not found")
	ProposalAlreadyFinalized = NewError(101, "proposal already finalized")
	InvalidStage             = NewError(102, "operation does not match the stage of proposal")
	InvalidKind              = NewError(103, "operation does not match the kind of proposal")
	AlreadyVoted             = NewError(104, "already voted")
	InvalidOrg               = NewError(105, "invalid organization")
	InvalidInstitution       = NewError(106, "invalid institution")
	VoteNotExpired           = NewError(107, "voting period is not yet expired")
	VoteExpired              = NewError(108, "voting period already expired")
	InvalidVoter             = NewError(109, "invalid voter address")
	NotEligibleCitizen       = NewError(110, "citizen is not eligible to vote")
	AllocationOverflow       = NewError(111, "proposal id allocation overflow")
	InvalidConfig            = NewError(112, "invalid governance configuration")
	CitizenAlreadyRegistered = NewError(113, "citizen already registered")

	StorageCoreError           = NewError(200, "storage error")
	StorageRecordDoesNotExist  = NewError(201, "record does not exist")
	StorageRecordAlreadyExists = NewError(202, "record already exists")
)
