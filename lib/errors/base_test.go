package errors

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"
)

func TestErrorsClone(t *testing.T) {
	require.Equal(t, AlreadyVoted, AlreadyVoted)

	e := AlreadyVoted.Clone()
	e0 := e.Clone()
	require.NotEqual(t, fmt.Sprintf("%p", e), fmt.Sprintf("%p", e0))

	{
		e.Code = 999
		require.NotEqual(t, e.Code, e0.Code)
	}

	{
		e0.SetData("showme", "killme")
		require.NotEqual(t, e.Data, e0.Data)
		require.Empty(t, AlreadyVoted.Data)
	}
}

func TestErrorsIs(t *testing.T) {
	require.True(t, AlreadyVoted.Is(AlreadyVoted))

	cloned := AlreadyVoted.Clone().SetData("voter", "GABC")
	require.True(t, AlreadyVoted.Is(cloned))
	require.False(t, InvalidOrg.Is(cloned))
	require.False(t, InvalidOrg.Is(fmt.Errorf("not sebak error")))
}

func TestErrorsUniqueCode(t *testing.T) {
	all := []*Error{
		ProposalNotFound, ProposalAlreadyFinalized, InvalidStage, InvalidKind,
		AlreadyVoted, InvalidOrg, InvalidInstitution, VoteNotExpired, VoteExpired,
		InvalidVoter, NotEligibleCitizen, AllocationOverflow, InvalidConfig,
		CitizenAlreadyRegistered, StorageCoreError, StorageRecordDoesNotExist,
		StorageRecordAlreadyExists,
	}

	codes := map[uint]string{}
	for _, e := range all {
		_, found := codes[e.Code]
		require.False(t, found, "duplicated code: %d", e.Code)
		codes[e.Code] = e.Message
	}
}

func TestErrorsRLP(t *testing.T) {
	{
		_, err := rlp.EncodeToBytes(ProposalNotFound)
		require.NoError(t, err)
	}

	{ // with `SetData()`, the rlp encoded value must be different
		encoded, err := rlp.EncodeToBytes(ProposalNotFound)
		require.NoError(t, err)

		e := ProposalNotFound.Clone()
		e.SetData("findme", "killme")
		encoded0, err := rlp.EncodeToBytes(e)
		require.NoError(t, err)
		require.NotEqual(t, encoded, encoded0)
	}
}
