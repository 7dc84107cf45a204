package registry

// Eligibility is the source of the citizen voter population. Citizens are
// counted in the registered order, so the first `electorate` citizens are
// the electorate snapshotted by `EligibleVoterCount`.
type Eligibility interface {
	// IsEligible reports whether citizen is one of the first electorate
	// citizens.
	IsEligible(citizen string, electorate uint32) (bool, error)
	// EligibleVoterCount is the total number of eligible citizens now.
	EligibleVoterCount() (uint32, error)
}

// FixedEligibility is the static `Eligibility`; the total is given apart
// from the citizens, so it can describe an electorate larger than the known
// citizens. Citizens maps the citizen to its registered sequence.
type FixedEligibility struct {
	Total    uint32
	Citizens map[string]uint32
}

func NewFixedEligibility(total uint32, citizens ...string) *FixedEligibility {
	f := &FixedEligibility{
		Total:    total,
		Citizens: map[string]uint32{},
	}
	for _, c := range citizens {
		f.Register(c)
	}

	return f
}

// Register appends citizen with the next sequence; the total grows when the
// sequence is over it.
func (f *FixedEligibility) Register(citizen string) uint32 {
	if sequence, found := f.Citizens[citizen]; found {
		return sequence
	}

	sequence := uint32(len(f.Citizens)) + 1
	f.Citizens[citizen] = sequence
	if sequence > f.Total {
		f.Total = sequence
	}

	return sequence
}

func (f *FixedEligibility) IsEligible(citizen string, electorate uint32) (bool, error) {
	sequence, found := f.Citizens[citizen]
	return found && sequence <= electorate, nil
}

func (f *FixedEligibility) EligibleVoterCount() (uint32, error) {
	return f.Total, nil
}
