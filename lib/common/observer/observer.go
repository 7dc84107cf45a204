package observer

import (
	"fmt"

	"github.com/GianlucaGuarini/go-observable"
)

// ProposalObserver receives every governance lifecycle event. Each event is
// triggered under its type name and under `proposal-<id>`, so subscribers
// can follow one kind of event or one proposal.
var ProposalObserver = observable.New()

// CitizenObserver receives `registered` for each new citizen.
var CitizenObserver = observable.New()

const (
	ConditionAll      = "*"
	ConditionProposal = "proposal"
)

func ProposalEventName(id uint64) string {
	return fmt.Sprintf("%s-%d", ConditionProposal, id)
}

// TriggerProposal fires eventType and the per-proposal event with args.
func TriggerProposal(eventType string, id uint64, args ...interface{}) {
	ProposalObserver.Trigger(eventType+" "+ProposalEventName(id), args...)
}
