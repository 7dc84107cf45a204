package registry

import "fmt"

const (
	NationalBodyID MemberID = 1

	// regional bodies are 101 ~ 136, reserve banks are 201 ~ 250
	regionalBodyIDBase MemberID = 100
	reserveBankIDBase  MemberID = 200

	NumberOfRegionalBodies = 36
	NumberOfReserveBanks   = 50

	NationalBodyPassThreshold uint32 = 13
	RegionalBodyPassThreshold uint32 = 6
	ReserveBankPassThreshold  uint32 = 5

	NationalBodyWeight uint32 = 19
	RegionalBodyWeight uint32 = 1
	ReserveBankWeight  uint32 = 1
)

// Constitution is the compiled-in membership table: one national body, the
// regional bodies and the reserve banks. The total weight is 105.
var Constitution Registry = NewStaticRegistry(constitutionMembers()...)

func RegionalBodyID(n int) MemberID {
	return regionalBodyIDBase + MemberID(n)
}

func ReserveBankID(n int) MemberID {
	return reserveBankIDBase + MemberID(n)
}

func constitutionMembers() []Member {
	members := []Member{
		{
			ID:            NationalBodyID,
			Kind:          MemberNational,
			Name:          "national-body",
			PassThreshold: NationalBodyPassThreshold,
			Weight:        NationalBodyWeight,
		},
	}

	for i := 1; i <= NumberOfRegionalBodies; i++ {
		members = append(members, Member{
			ID:            RegionalBodyID(i),
			Kind:          MemberRegional,
			Name:          fmt.Sprintf("regional-body-%02d", i),
			PassThreshold: RegionalBodyPassThreshold,
			Weight:        RegionalBodyWeight,
		})
	}

	for i := 1; i <= NumberOfReserveBanks; i++ {
		members = append(members, Member{
			ID:            ReserveBankID(i),
			Kind:          MemberReserveBank,
			Name:          fmt.Sprintf("reserve-bank-%02d", i),
			PassThreshold: ReserveBankPassThreshold,
			Weight:        ReserveBankWeight,
		})
	}

	return members
}
