package common

import (
	"encoding/json"
	"testing"
	"time"

	logging "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/require"

	"boscoin.io/sebak-gov/lib/errors"
)

func TestJsonFormatEx(t *testing.T) {
	at := time.Date(2019, time.January, 2, 3, 4, 5, 6, time.UTC)
	var nilError *errors.Error

	r := &logging.Record{
		Time: at,
		Lvl:  logging.LvlInfo,
		Msg:  "proposal finalized",
		Ctx: []interface{}{
			"at", at,
			"error", errors.ProposalNotFound,
			"none", nilError,
			"height", 10,
		},
		KeyNames: logging.RecordKeyNames{Time: "t", Msg: "msg", Lvl: "lvl"},
	}

	b := JsonFormatEx(false, true).Format(r)
	require.Equal(t, byte('\n'), b[len(b)-1])

	var props map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &props))

	require.Equal(t, "proposal finalized", props["msg"])
	require.Equal(t, "info", props["lvl"])
	require.Equal(t, FormatISO8601(at), props["at"])
	require.Equal(t, float64(10), props["height"])

	e, ok := props["error"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, float64(errors.ProposalNotFound.Code), e["code"])
}

func TestParseISO8601(t *testing.T) {
	parsed, err := ParseISO8601("2019-01-02T03:04:05.000000006+09:00")
	require.NoError(t, err)

	require.Equal(t, 2019, parsed.Year())
	require.Equal(t, 6, parsed.Nanosecond())

	_, offset := parsed.Zone()
	require.Equal(t, 9*60*60, offset)

	require.Equal(t, "2019-01-02T03:04:05.000000006+09:00", FormatISO8601(parsed))
}
