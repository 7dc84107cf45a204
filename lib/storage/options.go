package storage

import (
	"net/url"
	"strconv"
)

var DefaultMaxLimitListOptions uint64 = 100

type ListOptions interface {
	Reverse() bool
	SetReverse(bool) ListOptions
	Cursor() []byte
	SetCursor([]byte) ListOptions
	Limit() uint64
	SetLimit(uint64) ListOptions
	URLValues() url.Values
	Encode() string
}

type DefaultListOptions struct {
	reverse bool
	cursor  []byte
	limit   uint64
}

func NewDefaultListOptions(reverse bool, cursor []byte, limit uint64) *DefaultListOptions {
	return &DefaultListOptions{
		reverse: reverse,
		cursor:  cursor,
		limit:   limit,
	}
}

// NewDefaultListOptionsFromQuery reads `reverse`, `cursor` and `limit` from
// the url query; limit is capped by `DefaultMaxLimitListOptions`.
func NewDefaultListOptionsFromQuery(v url.Values) (*DefaultListOptions, error) {
	options := &DefaultListOptions{limit: DefaultMaxLimitListOptions}

	var err error
	if s := v.Get("reverse"); len(s) > 0 {
		if options.reverse, err = strconv.ParseBool(s); err != nil {
			return nil, err
		}
	}

	if s := v.Get("cursor"); len(s) > 0 {
		options.cursor = []byte(s)
	}

	if s := v.Get("limit"); len(s) > 0 {
		var limit uint64
		if limit, err = strconv.ParseUint(s, 10, 64); err != nil {
			return nil, err
		}
		if limit > 0 && limit < DefaultMaxLimitListOptions {
			options.limit = limit
		}
	}

	return options, nil
}

func (o DefaultListOptions) Reverse() bool {
	return o.reverse
}

func (o *DefaultListOptions) SetReverse(r bool) ListOptions {
	o.reverse = r
	return o
}

func (o DefaultListOptions) Cursor() []byte {
	return o.cursor
}

func (o *DefaultListOptions) SetCursor(c []byte) ListOptions {
	o.cursor = c
	return o
}

func (o DefaultListOptions) Limit() uint64 {
	return o.limit
}

func (o *DefaultListOptions) SetLimit(l uint64) ListOptions {
	o.limit = l
	return o
}

func (o DefaultListOptions) URLValues() url.Values {
	v := url.Values{
		"reverse": []string{strconv.FormatBool(o.reverse)},
	}

	if len(o.cursor) > 0 {
		v.Set("cursor", string(o.cursor))
	}
	if o.limit > 0 {
		v.Set("limit", strconv.FormatUint(o.limit, 10))
	}

	return v
}

func (o DefaultListOptions) Encode() string {
	return o.URLValues().Encode()
}
