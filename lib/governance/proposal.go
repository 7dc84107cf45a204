package governance

import (
	"fmt"
	"strconv"

	"boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/errors"
	"boscoin.io/sebak-gov/lib/registry"
	"boscoin.io/sebak-gov/lib/storage"
)

// Proposal is the governance item. It is never removed from the storage,
//
// models
//  * 'id'
// 	- 'gp-id-<Proposal.ID>': `Proposal`
//  * 'open'
// 	- 'gp-open-<Proposal.ID>': `Proposal.ID`, only while the status is
// 	  `StatusVoting`
//  * 'last id'
// 	- 'gp-last-id': the last allocated `Proposal.ID`
const (
	ProposalPrefixID   string = "gp-id-"
	ProposalPrefixOpen string = "gp-open-"
	ProposalLastIDKey  string = "gp-last-id"
)

type Proposal struct {
	ID     uint64 `json:"id"`
	Kind   Kind   `json:"kind"`
	Stage  Stage  `json:"stage"`
	Status Status `json:"status"`

	// InternalOrg is set only for `KindInternal`.
	InternalOrg *registry.MemberID `json:"internal-org,omitempty"`

	// Start and End bound the current stage in block height.
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`

	CitizenEligibleTotal uint32 `json:"citizen-eligible-total"`
}

func (p Proposal) String() string {
	return string(common.MustMarshalJSON(p))
}

func (p Proposal) IsOpen() bool {
	return p.Status == StatusVoting
}

// IsExpired reports whether the current stage ended before height.
func (p Proposal) IsExpired(height uint64) bool {
	return height > p.End
}

// Hash is the digest of the proposal record for audit. The hashed record
// has only integers and strings, so the encoding never fails.
func (p Proposal) Hash() string {
	var hasOrg, org uint32
	if p.InternalOrg != nil {
		hasOrg, org = 1, uint32(*p.InternalOrg)
	}

	return common.MustMakeObjectHashString(struct {
		ID                   uint64
		Kind                 string
		Stage                string
		Status               string
		HasInternalOrg       uint32
		InternalOrg          uint32
		Start                uint64
		End                  uint64
		CitizenEligibleTotal uint32
	}{
		ID:                   p.ID,
		Kind:                 string(p.Kind),
		Stage:                string(p.Stage),
		Status:               string(p.Status),
		HasInternalOrg:       hasOrg,
		InternalOrg:          org,
		Start:                p.Start,
		End:                  p.End,
		CitizenEligibleTotal: p.CitizenEligibleTotal,
	})
}

// Save stores the proposal and keeps the 'open' index in sync with the
// status.
func (p *Proposal) Save(st *storage.LevelDBBackend) (err error) {
	key := GetProposalKey(p.ID)

	var exists bool
	if exists, err = st.Has(key); err != nil {
		return
	}

	if exists {
		err = st.Set(key, p)
	} else {
		err = st.New(key, p)
	}
	if err != nil {
		return
	}

	openKey := GetProposalOpenKey(p.ID)
	if exists, err = st.Has(openKey); err != nil {
		return
	}

	switch {
	case p.IsOpen() && !exists:
		err = st.New(openKey, p.ID)
	case !p.IsOpen() && exists:
		err = st.Remove(openKey)
	}

	return
}

func GetProposalKey(id uint64) string {
	return fmt.Sprintf("%s%020d", ProposalPrefixID, id)
}

func GetProposalOpenKey(id uint64) string {
	return fmt.Sprintf("%s%020d", ProposalPrefixOpen, id)
}

func ExistsProposal(st *storage.LevelDBBackend, id uint64) (bool, error) {
	return st.Has(GetProposalKey(id))
}

func GetProposal(st *storage.LevelDBBackend, id uint64) (p Proposal, err error) {
	if err = st.Get(GetProposalKey(id), &p); err != nil {
		if err == errors.StorageRecordDoesNotExist {
			err = errors.ProposalNotFound.Clone().SetData("proposal", id)
		}
		return
	}

	return
}

// NextProposalID allocates the id for the new proposal; ids start from 1
// and are never reused.
func NextProposalID(st *storage.LevelDBBackend) (id uint64, err error) {
	var last uint64
	var exists bool
	if exists, err = st.Has(ProposalLastIDKey); err != nil {
		return
	} else if exists {
		if err = st.Get(ProposalLastIDKey, &last); err != nil {
			return
		}
	}

	var ok bool
	if id, ok = common.CheckedAddUint64(last, 1); !ok {
		err = errors.AllocationOverflow.Clone().SetData("last", last)
		return
	}

	if exists {
		err = st.Set(ProposalLastIDKey, id)
	} else {
		err = st.New(ProposalLastIDKey, id)
	}

	return
}

// proposalCursor converts the proposal id in the cursor of options into the
// storage key.
func proposalCursor(prefix string, options storage.ListOptions) (storage.ListOptions, error) {
	if options == nil || len(options.Cursor()) < 1 {
		return options, nil
	}

	id, err := strconv.ParseUint(string(options.Cursor()), 10, 64)
	if err != nil {
		return nil, err
	}

	return storage.NewDefaultListOptions(
		options.Reverse(),
		[]byte(fmt.Sprintf("%s%020d", prefix, id)),
		options.Limit(),
	), nil
}

// GetProposals iterates the proposals ordered by id. The cursor of options
// is the proposal id to start from.
func GetProposals(st *storage.LevelDBBackend, options storage.ListOptions) (func() (Proposal, bool), func()) {
	options, err := proposalCursor(ProposalPrefixID, options)
	if err != nil {
		return func() (Proposal, bool) { return Proposal{}, false }, func() {}
	}

	iterFunc, closeFunc := st.GetIterator(ProposalPrefixID, options)

	return (func() (Proposal, bool) {
			item, hasNext := iterFunc()
			if !hasNext {
				return Proposal{}, false
			}

			var p Proposal
			common.MustUnmarshalJSON(item.Value, &p)
			return p, hasNext
		}), (func() {
			closeFunc()
		})
}

// GetOpenProposalIDs returns the ids of the proposals in `StatusVoting`.
func GetOpenProposalIDs(st *storage.LevelDBBackend) (ids []uint64) {
	iterFunc, closeFunc := st.GetIterator(ProposalPrefixOpen, nil)
	defer closeFunc()

	for {
		item, hasNext := iterFunc()
		if !hasNext {
			break
		}

		var id uint64
		common.MustUnmarshalJSON(item.Value, &id)
		ids = append(ids, id)
	}

	return
}
