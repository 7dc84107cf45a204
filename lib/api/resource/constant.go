package resource

const (
	APIVersionV1 = "/v1"
	APIPrefix    = "/api"

	URLProposals       = APIPrefix + APIVersionV1 + "/proposals"
	URLProposal        = APIPrefix + APIVersionV1 + "/proposals/{id}"
	URLProposalTally   = APIPrefix + APIVersionV1 + "/proposals/{id}/tallies/{stage}"
	URLProposalVotes   = APIPrefix + APIVersionV1 + "/proposals/{id}/votes/{stage}"
	URLExpiredProposal = APIPrefix + APIVersionV1 + "/expired-proposals"
	URLCitizens        = APIPrefix + APIVersionV1 + "/citizens"
	URLCitizen         = APIPrefix + APIVersionV1 + "/citizens/{id}"
	URLMembers         = APIPrefix + APIVersionV1 + "/members"
)
