package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type GovernanceMetrics struct {
	ProposalsCreated   metrics.Counter
	Votes              metrics.Counter
	ProposalsFinalized metrics.Counter
	ProposalsAdvanced  metrics.Counter
	RejectedCalls      metrics.Counter

	CitizenEligibleTotal metrics.Gauge
}

func (g *GovernanceMetrics) AddProposalCreated(kind string) {
	g.ProposalsCreated.With(LabelKind, kind).Add(1)
}

func (g *GovernanceMetrics) AddVote(stage string) {
	g.Votes.With(LabelStage, stage).Add(1)
}

func (g *GovernanceMetrics) AddProposalFinalized(status string) {
	g.ProposalsFinalized.With(LabelStatus, status).Add(1)
}

func (g *GovernanceMetrics) AddProposalAdvanced(eligibleTotal uint32) {
	g.ProposalsAdvanced.Add(1)
	g.CitizenEligibleTotal.Set(float64(eligibleTotal))
}

func (g *GovernanceMetrics) AddRejectedCall() {
	g.RejectedCalls.Add(1)
}

func PromGovernanceMetrics() *GovernanceMetrics {
	return &GovernanceMetrics{
		ProposalsCreated: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "proposals_created_total",
			Help:      "Total number of created proposals.",
		}, []string{LabelKind}),
		Votes: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "votes_total",
			Help:      "Total number of accepted votes.",
		}, []string{LabelStage}),
		ProposalsFinalized: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "proposals_finalized_total",
			Help:      "Total number of finalized proposals.",
		}, []string{LabelStatus}),
		ProposalsAdvanced: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "proposals_advanced_total",
			Help:      "Total number of proposals advanced to the citizen stage.",
		}, []string{}),
		RejectedCalls: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "rejected_calls_total",
			Help:      "Total number of rejected governance calls.",
		}, []string{}),
		CitizenEligibleTotal: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "citizen_eligible_total",
			Help:      "Eligible citizens snapshotted by the last advanced proposal.",
		}, []string{}),
	}
}

func NopGovernanceMetrics() *GovernanceMetrics {
	return &GovernanceMetrics{
		ProposalsCreated:     discard.NewCounter(),
		Votes:                discard.NewCounter(),
		ProposalsFinalized:   discard.NewCounter(),
		ProposalsAdvanced:    discard.NewCounter(),
		RejectedCalls:        discard.NewCounter(),
		CitizenEligibleTotal: discard.NewGauge(),
	}
}
