package governance

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/sebak-gov/lib/errors"
	"boscoin.io/sebak-gov/lib/registry"
)

func TestDefaultConfig(t *testing.T) {
	config := NewConfig()

	require.Equal(t, uint64(518400), config.InternalStageDuration)
	require.Equal(t, uint64(518400), config.JointStageDuration)
	require.Equal(t, uint64(518400), config.CitizenStageDuration)
	require.Equal(t, uint32(105), config.UnanimousPassWeight)
	require.Equal(t, uint32(50), config.CitizenPassPercent)

	require.NoError(t, config.Validate(registry.Constitution))
}

func TestConfigValidate(t *testing.T) {
	reg := newJointTestRegistry()

	cases := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{name: "internal duration", modify: func(c *Config) { c.InternalStageDuration = 0 }, field: "internal-stage-duration"},
		{name: "joint duration", modify: func(c *Config) { c.JointStageDuration = 0 }, field: "joint-stage-duration"},
		{name: "citizen duration", modify: func(c *Config) { c.CitizenStageDuration = 0 }, field: "citizen-stage-duration"},
		{name: "zero percent", modify: func(c *Config) { c.CitizenPassPercent = 0 }, field: "citizen-pass-percent"},
		{name: "over 100 percent", modify: func(c *Config) { c.CitizenPassPercent = 101 }, field: "citizen-pass-percent"},
		{name: "zero unanimous", modify: func(c *Config) { c.UnanimousPassWeight = 0 }, field: "unanimous-pass-weight"},
		{name: "unreachable unanimous", modify: func(c *Config) { c.UnanimousPassWeight = 21 }, field: "unanimous-pass-weight"},
	}

	for _, cs := range cases {
		t.Run(cs.name, func(t *testing.T) {
			config := NewTestConfig(20)
			cs.modify(&config)

			err := config.Validate(reg)
			require.True(t, errors.InvalidConfig.Is(err))
			require.Equal(t, cs.field, err.(*errors.Error).Data["field"])

			_, err = NewEngine(nil, config, reg, nil, nil, nil)
			require.True(t, errors.InvalidConfig.Is(err))
		})
	}

	// less than the total weight is allowed
	config := NewTestConfig(19)
	require.NoError(t, config.Validate(reg))
}

func TestLoadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "sebak-gov-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "governance.yml")
	body := `
joint-stage-duration: 100
unanimous-pass-weight: 20
`
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0600))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, uint64(100), config.JointStageDuration)
	require.Equal(t, uint32(20), config.UnanimousPassWeight)
	require.Equal(t, DefaultInternalStageDuration, config.InternalStageDuration)
	require.Equal(t, DefaultCitizenPassPercent, config.CitizenPassPercent)

	{ // unknown field
		require.NoError(t, ioutil.WriteFile(path, []byte("showme: 1\n"), 0600))
		_, err := LoadConfig(path)
		require.True(t, errors.InvalidConfig.Is(err))
	}

	{ // missing file
		_, err := LoadConfig(filepath.Join(dir, "findme.yml"))
		require.Error(t, err)
	}
}
