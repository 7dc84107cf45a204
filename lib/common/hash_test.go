package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeObjectHash(t *testing.T) {
	type record struct {
		ID    uint64
		Stage string
	}

	a, err := MakeObjectHashString(record{ID: 1, Stage: "internal"})
	require.NoError(t, err)
	require.NotEmpty(t, a)

	b, err := MakeObjectHashString(record{ID: 1, Stage: "internal"})
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := MakeObjectHashString(record{ID: 2, Stage: "internal"})
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestMustMakeObjectHashString(t *testing.T) {
	type record struct {
		ID    uint64
		Stage string
	}

	h, err := MakeObjectHashString(record{ID: 1, Stage: "joint"})
	require.NoError(t, err)
	require.Equal(t, h, MustMakeObjectHashString(record{ID: 1, Stage: "joint"}))

	// rlp does not encode maps
	require.Panics(t, func() { MustMakeObjectHashString(map[string]uint64{"id": 1}) })
}
