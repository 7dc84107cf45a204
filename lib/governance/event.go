package governance

import (
	"boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/common/observer"
	"boscoin.io/sebak-gov/lib/registry"
)

type EventType string

const (
	EventProposalCreated           EventType = "proposal-created"
	EventInternalVoteCast          EventType = "internal-vote-cast"
	EventJointInstitutionVoteCast  EventType = "joint-institution-vote-cast"
	EventCitizenVoteCast           EventType = "citizen-vote-cast"
	EventProposalFinalized         EventType = "proposal-finalized"
	EventProposalAdvancedToCitizen EventType = "proposal-advanced-to-citizen"
)

// Event is the lifecycle record of a state change. Events are informational
// and never replayed into the state.
type Event interface {
	Type() EventType
	ProposalID() uint64
	Meta() EventMeta
}

// EventMeta has the unique id of an event; the sink delivers at least once,
// so the consumer can drop the duplicated `UID`.
type EventMeta struct {
	UID    string `json:"uid"`
	Height uint64 `json:"height"`
}

func NewEventMeta(height uint64) EventMeta {
	return EventMeta{
		UID:    common.GetUniqueIDFromUUID(),
		Height: height,
	}
}

func (m EventMeta) Meta() EventMeta {
	return m
}

type ProposalCreated struct {
	EventMeta
	ID    uint64 `json:"id"`
	Kind  Kind   `json:"kind"`
	Stage Stage  `json:"stage"`
	End   uint64 `json:"end"`
}

func (e ProposalCreated) Type() EventType   { return EventProposalCreated }
func (e ProposalCreated) ProposalID() uint64 { return e.ID }

type InternalVoteCast struct {
	EventMeta
	ID      uint64 `json:"id"`
	Voter   string `json:"voter"`
	Approve bool   `json:"approve"`
}

func (e InternalVoteCast) Type() EventType   { return EventInternalVoteCast }
func (e InternalVoteCast) ProposalID() uint64 { return e.ID }

type JointInstitutionVoteCast struct {
	EventMeta
	ID             uint64            `json:"id"`
	Institution    registry.MemberID `json:"institution"`
	InternalPassed bool              `json:"internal-passed"`
}

func (e JointInstitutionVoteCast) Type() EventType   { return EventJointInstitutionVoteCast }
func (e JointInstitutionVoteCast) ProposalID() uint64 { return e.ID }

type CitizenVoteCast struct {
	EventMeta
	ID      uint64 `json:"id"`
	Citizen string `json:"citizen"`
	Approve bool   `json:"approve"`
}

func (e CitizenVoteCast) Type() EventType   { return EventCitizenVoteCast }
func (e CitizenVoteCast) ProposalID() uint64 { return e.ID }

type ProposalFinalized struct {
	EventMeta
	ID     uint64 `json:"id"`
	Status Status `json:"status"`
}

func (e ProposalFinalized) Type() EventType   { return EventProposalFinalized }
func (e ProposalFinalized) ProposalID() uint64 { return e.ID }

type ProposalAdvancedToCitizen struct {
	EventMeta
	ID            uint64 `json:"id"`
	CitizenEnd    uint64 `json:"citizen-end"`
	EligibleTotal uint32 `json:"eligible-total"`
}

func (e ProposalAdvancedToCitizen) Type() EventType   { return EventProposalAdvancedToCitizen }
func (e ProposalAdvancedToCitizen) ProposalID() uint64 { return e.ID }

// EventSink receives the events of the committed operations in order. Emit
// must not call back into the `Engine`.
type EventSink interface {
	Emit(Event)
}

// ObserverSink triggers `observer.ProposalObserver` with the event type
// and `proposal-<id>`.
type ObserverSink struct{}

func (s ObserverSink) Emit(e Event) {
	observer.TriggerProposal(string(e.Type()), e.ProposalID(), e)
}

type NopSink struct{}

func (s NopSink) Emit(Event) {}
