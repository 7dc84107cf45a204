package governance

import (
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v2"

	"boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/errors"
	"boscoin.io/sebak-gov/lib/registry"
)

var (
	// each stage lasts 30 days
	DefaultInternalStageDuration uint64 = common.BlocksIn(30 * 24 * time.Hour)
	DefaultJointStageDuration    uint64 = common.BlocksIn(30 * 24 * time.Hour)
	DefaultCitizenStageDuration  uint64 = common.BlocksIn(30 * 24 * time.Hour)

	// DefaultUnanimousPassWeight is the total weight of the constitutional
	// institutions.
	DefaultUnanimousPassWeight uint32 = 105
	DefaultCitizenPassPercent  uint32 = 50
)

//
// Config has the durations of stages, counted in blocks, and the pass
// thresholds. It is given to `NewEngine` and fixed during the life of the
// engine.
//
type Config struct {
	InternalStageDuration uint64 `yaml:"internal-stage-duration" json:"internal-stage-duration"`
	JointStageDuration    uint64 `yaml:"joint-stage-duration" json:"joint-stage-duration"`
	CitizenStageDuration  uint64 `yaml:"citizen-stage-duration" json:"citizen-stage-duration"`

	// UnanimousPassWeight is the yes weight which passes the joint stage.
	UnanimousPassWeight uint32 `yaml:"unanimous-pass-weight" json:"unanimous-pass-weight"`

	// CitizenPassPercent; the citizen stage passes when the yes votes are
	// more than this percent.
	CitizenPassPercent uint32 `yaml:"citizen-pass-percent" json:"citizen-pass-percent"`
}

func NewConfig() Config {
	return Config{
		InternalStageDuration: DefaultInternalStageDuration,
		JointStageDuration:    DefaultJointStageDuration,
		CitizenStageDuration:  DefaultCitizenStageDuration,
		UnanimousPassWeight:   DefaultUnanimousPassWeight,
		CitizenPassPercent:    DefaultCitizenPassPercent,
	}
}

// LoadConfig reads the yaml file at path over `NewConfig()`; the missing
// fields keep the default values.
func LoadConfig(path string) (config Config, err error) {
	config = NewConfig()

	var b []byte
	if b, err = ioutil.ReadFile(path); err != nil {
		return
	}

	if err = yaml.UnmarshalStrict(b, &config); err != nil {
		err = errors.InvalidConfig.Clone().SetData("error", err.Error())
		return
	}

	return
}

// Validate checks the config against the membership table of reg. The
// unanimous weight must be reachable, that is, not more than the total
// weight of all institutions.
func (c Config) Validate(reg registry.Registry) error {
	invalid := func(field string, reason string) error {
		return errors.InvalidConfig.Clone().SetData("field", field).SetData("reason", reason)
	}

	if c.InternalStageDuration < 1 {
		return invalid("internal-stage-duration", "must be greater than 0")
	}
	if c.JointStageDuration < 1 {
		return invalid("joint-stage-duration", "must be greater than 0")
	}
	if c.CitizenStageDuration < 1 {
		return invalid("citizen-stage-duration", "must be greater than 0")
	}
	if c.CitizenPassPercent < 1 || c.CitizenPassPercent > 100 {
		return invalid("citizen-pass-percent", "must be in 1 ~ 100")
	}
	if c.UnanimousPassWeight < 1 {
		return invalid("unanimous-pass-weight", "must be greater than 0")
	}

	total := reg.TotalWeight()
	if c.UnanimousPassWeight > total {
		return invalid(
			"unanimous-pass-weight",
			fmt.Sprintf("%d is over the total weight, %d", c.UnanimousPassWeight, total),
		)
	}
	if c.UnanimousPassWeight < total {
		log.Warn(
			"unanimous pass weight is less than the total weight of institutions",
			"unanimous-pass-weight", c.UnanimousPassWeight,
			"total-weight", total,
		)
	}

	return nil
}

func (c Config) String() string {
	return string(common.MustMarshalJSON(c))
}
