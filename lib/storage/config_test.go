package storage

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfigFromString(t *testing.T) {
	{
		config, err := NewConfigFromString("memory://")
		require.NoError(t, err)
		require.Equal(t, SchemeMemory, config.Scheme)
		require.Equal(t, "memory://", config.String())
	}

	{
		config, err := NewConfigFromString("file:///tmp/sebak-gov/db")
		require.NoError(t, err)
		require.Equal(t, SchemeFile, config.Scheme)
		require.Equal(t, "/tmp/sebak-gov/db", config.Path)
		require.Equal(t, "file:///tmp/sebak-gov/db", config.String())
	}

	{
		_, err := NewConfigFromString("file://")
		require.Error(t, err)
	}

	{
		_, err := NewConfigFromString("redis://localhost:6379")
		require.Error(t, err)
	}
}

func TestNewDefaultListOptionsFromQuery(t *testing.T) {
	{
		options, err := NewDefaultListOptionsFromQuery(url.Values{})
		require.NoError(t, err)
		require.False(t, options.Reverse())
		require.Nil(t, options.Cursor())
		require.Equal(t, DefaultMaxLimitListOptions, options.Limit())
	}

	{
		options, err := NewDefaultListOptionsFromQuery(url.Values{
			"reverse": []string{"true"},
			"cursor":  []string{"gp-00000000000000000003"},
			"limit":   []string{"5"},
		})
		require.NoError(t, err)
		require.True(t, options.Reverse())
		require.Equal(t, []byte("gp-00000000000000000003"), options.Cursor())
		require.Equal(t, uint64(5), options.Limit())

		require.Equal(t, "cursor=gp-00000000000000000003&limit=5&reverse=true", options.Encode())
	}

	{
		_, err := NewDefaultListOptionsFromQuery(url.Values{"limit": []string{"-1"}})
		require.Error(t, err)
	}
}
