package registry

import (
	"fmt"
	"sort"

	"boscoin.io/sebak-gov/lib/common"
)

// MemberID identifies an organization in the internal stage and the same
// body as an institution in the joint stage.
type MemberID uint32

func (m MemberID) String() string {
	return fmt.Sprintf("%d", uint32(m))
}

type MemberKind string

const (
	MemberNational    MemberKind = "national"
	MemberRegional    MemberKind = "regional"
	MemberReserveBank MemberKind = "reserve-bank"
)

// Member is one row of the membership table.
//  * PassThreshold: number of yes votes which passes the internal vote of
//    the organization; 0 means it can not hold an internal vote.
//  * Weight: voting weight as an institution in the joint stage; 0 means it
//    does not vote in the joint stage.
type Member struct {
	ID            MemberID   `json:"id"`
	Kind          MemberKind `json:"kind"`
	Name          string     `json:"name"`
	PassThreshold uint32     `json:"pass-threshold"`
	Weight        uint32     `json:"weight"`
}

// Registry answers membership questions from a fixed table. It has no
// mutation interface.
type Registry interface {
	IsValidOrganization(MemberID) bool
	OrganizationPassThreshold(MemberID) (uint32, bool)
	IsValidInstitution(MemberID) bool
	InstitutionWeight(MemberID) (uint32, bool)
	// TotalWeight is the sum of the weights of all institutions.
	TotalWeight() uint32
	Members() []Member
}

type StaticRegistry struct {
	members     map[MemberID]Member
	totalWeight uint32
}

// NewStaticRegistry builds the table from members; the later one wins for
// the duplicated `MemberID`.
func NewStaticRegistry(members ...Member) *StaticRegistry {
	r := &StaticRegistry{members: map[MemberID]Member{}}
	for _, m := range members {
		r.members[m.ID] = m
	}

	for _, m := range r.members {
		r.totalWeight = common.SaturatingAddUint32(r.totalWeight, m.Weight)
	}

	return r
}

func (r *StaticRegistry) IsValidOrganization(id MemberID) bool {
	_, found := r.OrganizationPassThreshold(id)
	return found
}

func (r *StaticRegistry) OrganizationPassThreshold(id MemberID) (uint32, bool) {
	m, found := r.members[id]
	if !found || m.PassThreshold < 1 {
		return 0, false
	}

	return m.PassThreshold, true
}

func (r *StaticRegistry) IsValidInstitution(id MemberID) bool {
	_, found := r.InstitutionWeight(id)
	return found
}

func (r *StaticRegistry) InstitutionWeight(id MemberID) (uint32, bool) {
	m, found := r.members[id]
	if !found || m.Weight < 1 {
		return 0, false
	}

	return m.Weight, true
}

func (r *StaticRegistry) TotalWeight() uint32 {
	return r.totalWeight
}

// Members returns the copy of the table ordered by `MemberID`.
func (r *StaticRegistry) Members() []Member {
	members := make([]Member, 0, len(r.members))
	for _, m := range r.members {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].ID < members[j].ID
	})

	return members
}
