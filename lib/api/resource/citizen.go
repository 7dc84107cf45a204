package resource

import (
	"strings"

	"github.com/nvellon/hal"

	"boscoin.io/sebak-gov/lib/registry"
)

type Citizen struct {
	c registry.Citizen
}

func NewCitizen(c registry.Citizen) *Citizen {
	return &Citizen{c: c}
}

func (c Citizen) GetMap() hal.Entry {
	return hal.Entry{
		"address":  c.c.Address,
		"sequence": c.c.Sequence,
		"height":   c.c.Height,
	}
}

func (c Citizen) Resource() *hal.Resource {
	return hal.NewResource(c, c.LinkSelf())
}

func (c Citizen) LinkSelf() string {
	return strings.Replace(URLCitizen, "{id}", c.c.Address, -1)
}

type Member struct {
	m registry.Member
}

func NewMember(m registry.Member) *Member {
	return &Member{m: m}
}

func (m Member) GetMap() hal.Entry {
	return hal.Entry{
		"id":             m.m.ID,
		"kind":           m.m.Kind,
		"name":           m.m.Name,
		"pass_threshold": m.m.PassThreshold,
		"weight":         m.m.Weight,
	}
}

func (m Member) Resource() *hal.Resource {
	return hal.NewResource(m, m.LinkSelf())
}

func (m Member) LinkSelf() string {
	return URLMembers
}
