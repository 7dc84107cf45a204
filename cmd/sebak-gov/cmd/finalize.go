package cmd

import (
	"github.com/spf13/cobra"

	"boscoin.io/sebak-gov/cmd/sebak-gov/common"
	"boscoin.io/sebak-gov/lib/governance"
)

var finalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "Resolve the expired stage of the proposal",
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

var tickCmd = &cobra.Command{
	Use:   "tick",
	Short: "Resolve every expired proposal at the current height",
	Run: func(c *cobra.Command, args []string) {
		prepareEngine(c)
		defer closeEngine()

		results, err := engine.FinalizeExpired()
		if err != nil {
			closeEngine()
			common.ExitWithRejection(err)
		}

		output(newTickResults(results))
	},
}

// TickResult is the printable `governance.ExpireResult`.
type TickResult struct {
	ID       uint64               `json:"id"`
	Stage    governance.Stage     `json:"stage"`
	Proposal *governance.Proposal `json:"proposal,omitempty"`
	Error    string               `json:"error,omitempty"`
}

func newTickResults(results []governance.ExpireResult) []TickResult {
	printable := []TickResult{}
	for _, r := range results {
		t := TickResult{ID: r.ID, Stage: r.Stage}
		if r.Error != nil {
			t.Error = r.Error.Error()
		} else {
			p := r.Proposal
			t.Proposal = &p
		}
		printable = append(printable, t)
	}

	return printable
}

func finalizeRunner(finalize func(uint64) (governance.Proposal, error)) func(*cobra.Command, []string) {
	return func(c *cobra.Command, args []string) {
		id, err := common.ParseProposalID(args[0])
		if err != nil {
			common.PrintError(c, err)
		}

		prepareEngine(c)
		defer closeEngine()

		p, err := finalize(id)
		if err != nil {
			closeEngine()
			common.ExitWithRejection(err)
		}
		output(p)
	}
}

func init() {
	finalizeCmd.AddCommand(
		&cobra.Command{
			Use:   "internal <proposal id>",
			Short: "Reject the expired internal proposal",
			Args:  cobra.ExactArgs(1),
			Run: finalizeRunner(func(id uint64) (governance.Proposal, error) {
				return engine.FinalizeInternalTimeout(id)
			}),
		},
		&cobra.Command{
			Use:   "joint <proposal id>",
			Short: "Pass or advance the expired joint proposal to the citizen stage",
			Args:  cobra.ExactArgs(1),
			Run: finalizeRunner(func(id uint64) (governance.Proposal, error) {
				return engine.FinalizeJointTimeout(id)
			}),
		},
		&cobra.Command{
			Use:   "citizen <proposal id>",
			Short: "Resolve the expired citizen stage",
			Args:  cobra.ExactArgs(1),
			Run: finalizeRunner(func(id uint64) (governance.Proposal, error) {
				return engine.FinalizeCitizenTimeout(id)
			}),
		},
	)

	rootCmd.AddCommand(finalizeCmd, tickCmd)
}
