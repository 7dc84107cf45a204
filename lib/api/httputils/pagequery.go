package httputils

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"boscoin.io/sebak-gov/lib/storage"
)

// PageQuery reads `cursor`, `reverse` and `limit` of the list request.
type PageQuery struct {
	request *http.Request
	options *storage.DefaultListOptions
}

func NewPageQuery(r *http.Request) (*PageQuery, error) {
	options, err := storage.NewDefaultListOptionsFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}

	return &PageQuery{request: r, options: options}, nil
}

func (p *PageQuery) Limit() uint64 {
	return p.options.Limit()
}

func (p *PageQuery) Reverse() bool {
	return p.options.Reverse()
}

func (p *PageQuery) Cursor() []byte {
	return p.options.Cursor()
}

// ListOptions asks one more record than the limit, so the caller can find
// the cursor of the next page.
func (p *PageQuery) ListOptions() storage.ListOptions {
	return storage.NewDefaultListOptions(p.Reverse(), p.Cursor(), p.Limit()+1)
}

func (p *PageQuery) SelfLink() string {
	return p.request.URL.String()
}

func (p *PageQuery) NextLink(cursor []byte) string {
	return p.link(cursor, p.Reverse())
}

func (p *PageQuery) PrevLink(cursor []byte) string {
	return p.link(cursor, !p.Reverse())
}

func (p *PageQuery) link(cursor []byte, reverse bool) string {
	v := url.Values{
		"reverse": []string{strconv.FormatBool(reverse)},
	}
	if len(cursor) > 0 {
		v.Set("cursor", string(cursor))
	}
	v.Set("limit", strconv.FormatUint(p.Limit(), 10))

	return fmt.Sprintf("%s?%s", p.request.URL.Path, v.Encode())
}
