package registry

import (
	"fmt"

	"boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/common/keypair"
	"boscoin.io/sebak-gov/lib/common/observer"
	"boscoin.io/sebak-gov/lib/errors"
	"boscoin.io/sebak-gov/lib/storage"
)

// CitizenRoll is the `Eligibility` kept in the storage,
//
// models
//  * 'address'
// 	- 'gc-address-<Citizen.Address>': `Citizen`
//  * 'registered'
// 	- 'gc-registered-<Citizen.Sequence>': `Citizen.Address`
//  * 'count'
// 	- 'gc-count': number of registered citizens
const (
	CitizenPrefixAddress    string = "gc-address-"
	CitizenPrefixRegistered string = "gc-registered-"
	CitizenCountKey         string = "gc-count"
)

type Citizen struct {
	Address  string `json:"address"`
	Sequence uint32 `json:"sequence"`
	Height   uint64 `json:"height"` // block height of registration
}

func (c Citizen) String() string {
	return string(common.MustMarshalJSON(c))
}

func GetCitizenKey(address string) string {
	return fmt.Sprintf("%s%s", CitizenPrefixAddress, address)
}

func GetCitizenRegisteredKey(sequence uint32) string {
	return fmt.Sprintf("%s%010d", CitizenPrefixRegistered, sequence)
}

type CitizenRoll struct {
	st *storage.LevelDBBackend
}

func NewCitizenRoll(st *storage.LevelDBBackend) *CitizenRoll {
	return &CitizenRoll{st: st}
}

// Register adds the account address to the roll. The registration is done
// in one transaction.
func (r *CitizenRoll) Register(address string, height uint64) (citizen Citizen, err error) {
	if !keypair.IsValidAddress(address) {
		err = errors.InvalidVoter.Clone().SetData("citizen", address)
		return
	}

	var ts *storage.LevelDBBackend
	if ts, err = r.st.OpenTransaction(); err != nil {
		return
	}
	defer func() {
		if err != nil {
			ts.Discard()
		}
	}()

	var exists bool
	if exists, err = ts.Has(GetCitizenKey(address)); err != nil {
		return
	} else if exists {
		err = errors.CitizenAlreadyRegistered.Clone().SetData("citizen", address)
		return
	}

	var count uint32
	if count, err = getCitizenCount(ts); err != nil {
		return
	}

	citizen = Citizen{
		Address:  address,
		Sequence: common.SaturatingAddUint32(count, 1),
		Height:   height,
	}

	if err = ts.New(GetCitizenKey(address), citizen); err != nil {
		return
	}
	if err = ts.New(GetCitizenRegisteredKey(citizen.Sequence), address); err != nil {
		return
	}
	if count == 0 {
		err = ts.New(CitizenCountKey, citizen.Sequence)
	} else {
		err = ts.Set(CitizenCountKey, citizen.Sequence)
	}
	if err != nil {
		return
	}

	if err = ts.Commit(); err != nil {
		return
	}

	log.Debug("citizen registered", "citizen", citizen)
	observer.CitizenObserver.Trigger("registered", citizen)

	return
}

func (r *CitizenRoll) IsRegistered(address string) (bool, error) {
	return r.st.Has(GetCitizenKey(address))
}

// IsEligible checks the citizen was registered within the first electorate
// citizens; the later ones are not in the snapshotted electorate.
func (r *CitizenRoll) IsEligible(address string, electorate uint32) (bool, error) {
	citizen, err := r.Get(address)
	if err == errors.StorageRecordDoesNotExist {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return citizen.Sequence <= electorate, nil
}

func (r *CitizenRoll) EligibleVoterCount() (uint32, error) {
	return getCitizenCount(r.st)
}

func (r *CitizenRoll) Get(address string) (citizen Citizen, err error) {
	err = r.st.Get(GetCitizenKey(address), &citizen)
	return
}

// Citizens iterates the citizens in the registered order.
func (r *CitizenRoll) Citizens(options storage.ListOptions) (func() (Citizen, bool), func()) {
	iterFunc, closeFunc := r.st.GetIterator(CitizenPrefixRegistered, options)

	return (func() (Citizen, bool) {
			item, hasNext := iterFunc()
			if !hasNext {
				return Citizen{}, false
			}

			var address string
			common.MustUnmarshalJSON(item.Value, &address)

			citizen, err := r.Get(address)
			if err != nil {
				return Citizen{}, false
			}
			return citizen, hasNext
		}), (func() {
			closeFunc()
		})
}

func getCitizenCount(st *storage.LevelDBBackend) (count uint32, err error) {
	if err = st.Get(CitizenCountKey, &count); err == errors.StorageRecordDoesNotExist {
		err = nil
	}

	return
}
