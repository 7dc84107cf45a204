package storage

import (
	"net/url"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	SchemeFile   = "file"
	SchemeMemory = "memory"
)

// Config is parsed from the storage uri,
//  * `file:///<path>`: LevelDB files under path
//  * `memory://`: volatile LevelDB, mainly for testing
type Config struct {
	Scheme string
	Path   string
}

func NewConfigFromString(s string) (*Config, error) {
	parsed, err := url.Parse(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid storage uri, %q", s)
	}

	switch parsed.Scheme {
	case SchemeMemory:
		return &Config{Scheme: SchemeMemory}, nil
	case SchemeFile:
		path := parsed.Path
		if len(parsed.Host) > 0 { // `file://db` is relative
			path = filepath.Join(parsed.Host, parsed.Path)
		}
		if len(path) < 1 {
			return nil, errors.Errorf("empty path in storage uri, %q", s)
		}

		if path, err = filepath.Abs(path); err != nil {
			return nil, errors.Wrapf(err, "invalid path in storage uri, %q", s)
		}

		return &Config{Scheme: SchemeFile, Path: path}, nil
	default:
		return nil, errors.Errorf("unsupported storage scheme, %q", parsed.Scheme)
	}
}

func (c Config) String() string {
	if c.Scheme == SchemeMemory {
		return SchemeMemory + "://"
	}

	return (&url.URL{Scheme: c.Scheme, Path: c.Path}).String()
}
