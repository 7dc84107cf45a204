package httputils

import (
	"strconv"

	"boscoin.io/sebak-gov/lib/errors"
)

var ErrorsToStatus = map[uint]int{
	100: 404, // ProposalNotFound
	101: 400,
	102: 400,
	103: 400,
	104: 400,
	105: 400,
	106: 400,
	107: 400,
	108: 400,
	109: 400,
	110: 400,
	111: 400,
	112: 400,
	113: 400,
	201: 404, // StorageRecordDoesNotExist
}

func StatusCode(err error) int {
	if e, ok := err.(*errors.Error); ok {
		if status, found := ErrorsToStatus[e.Code]; found {
			return status
		}
	}

	return 500
}

func codeString(code uint) string {
	return strconv.FormatUint(uint64(code), 10)
}
