package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"boscoin.io/sebak-gov/lib/errors"
)

/**
 * Issue a message on Stderr then exit with an error code
 */
func PrintFlagsError(cmd *cobra.Command, flagName string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid '%s'; %s\n\n", flagName, errorString(err))
	}

	cmd.Help()

	os.Exit(1)
}

func PrintError(cmd *cobra.Command, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n\n", errorString(err))
	}

	cmd.Help()

	os.Exit(1)
}

// ExitWithRejection prints the rejected governance call without the usage.
func ExitWithRejection(err error) {
	if e, ok := err.(*errors.Error); ok {
		fmt.Fprintf(os.Stderr, "rejected: %s\n", e.Error())
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
	}

	os.Exit(1)
}

func errorString(err error) string {
	if sebakError, ok := err.(*errors.Error); ok {
		return sebakError.Message
	}

	return err.Error()
}

// ParseApprove reads the vote; yes, y, approve, true and 1 are approval,
// no, n, reject, false and 0 are rejection.
func ParseApprove(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "approve":
		return true, nil
	case "no", "n", "reject":
		return false, nil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid vote, %q", s)
	}

	return b, nil
}

func ParseProposalID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid proposal id, %q", s)
	}

	return id, nil
}

func ParseMemberID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid member id, %q", s)
	}

	return uint32(id), nil
}

func ParseHeight(s string) (uint64, error) {
	h, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block height, %q", s)
	}

	return h, nil
}
