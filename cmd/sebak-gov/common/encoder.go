package common

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

type Encode func(v interface{}, w io.Writer) error

var DefaultEncodes = map[string]Encode{
	"json": func(v interface{}, w io.Writer) error {
		return jsonEncode(v, w, false)
	},
	"prettyjson": func(v interface{}, w io.Writer) error {
		return jsonEncode(v, w, true)
	},
	"yaml": func(v interface{}, w io.Writer) error {
		// yaml follows the json field names
		var m interface{}
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if err = yaml.Unmarshal(b, &m); err != nil {
			return err
		}

		e := yaml.NewEncoder(w)
		defer e.Close()
		return e.Encode(m)
	},
}

func GetEncode(format string) (Encode, error) {
	e, found := DefaultEncodes[format]
	if !found {
		return nil, fmt.Errorf("unknown format, %q", format)
	}

	return e, nil
}

func jsonEncode(v interface{}, w io.Writer, pretty bool) error {
	e := json.NewEncoder(w)
	if pretty {
		e.SetIndent("", "  ")
	}

	return e.Encode(&v)
}
