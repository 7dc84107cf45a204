package cmd

import (
	"github.com/spf13/cobra"

	"boscoin.io/sebak-gov/cmd/sebak-gov/common"
	"boscoin.io/sebak-gov/lib/governance"
	"boscoin.io/sebak-gov/lib/registry"
	"boscoin.io/sebak-gov/lib/storage"
)

var (
	flagOrg     string
	flagReverse bool
	flagCursor  string
	flagLimit   uint64
)

var proposalCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Create and inspect proposals",
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

// ProposalDetail is the proposal with the tallies of the stages it entered.
type ProposalDetail struct {
	governance.Proposal
	Hash    string                                `json:"hash"`
	Tallies map[governance.Stage]governance.Tally `json:"tallies"`
}

func init() {
	internalCmd := &cobra.Command{
		Use:   "internal",
		Short: "Create the internal proposal of an organization",
		Run: func(c *cobra.Command, args []string) {
			prepareEngine(c)
			defer closeEngine()

			org, err := common.ParseMemberID(flagOrg)
			if err != nil {
				common.PrintFlagsError(c, "--org", err)
			}

			p, err := engine.CreateInternalProposal(registry.MemberID(org))
			if err != nil {
				closeEngine()
				common.ExitWithRejection(err)
			}
			output(p)
		},
	}
	internalCmd.Flags().StringVar(&flagOrg, "org", "", "organization id")

	jointCmd := &cobra.Command{
		Use:   "joint",
		Short: "Create the joint proposal",
		Run: func(c *cobra.Command, args []string) {
			prepareEngine(c)
			defer closeEngine()

			p, err := engine.CreateJointProposal()
			if err != nil {
				closeEngine()
				common.ExitWithRejection(err)
			}
			output(p)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <proposal id>",
		Short: "Show the proposal with its tallies",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			prepareEngine(c)
			defer closeEngine()

			id, err := common.ParseProposalID(args[0])
			if err != nil {
				common.PrintError(c, err)
			}

			detail, err := proposalDetail(engine, id)
			if err != nil {
				closeEngine()
				common.ExitWithRejection(err)
			}
			output(detail)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the proposals ordered by id",
		Run: func(c *cobra.Command, args []string) {
			prepareEngine(c)
			defer closeEngine()

			var cursor []byte
			if len(flagCursor) > 0 {
				cursor = []byte(flagCursor)
			}

			output(listProposals(engine, storage.NewDefaultListOptions(flagReverse, cursor, flagLimit)))
		},
	}
	listCmd.Flags().BoolVar(&flagReverse, "reverse", false, "list in reverse order")
	listCmd.Flags().StringVar(&flagCursor, "cursor", "", "proposal id to start from")
	listCmd.Flags().Uint64Var(&flagLimit, "limit", 0, "maximum number of proposals, 0 is unlimited")

	proposalCmd.AddCommand(internalCmd, jointCmd, showCmd, listCmd)
	rootCmd.AddCommand(proposalCmd)
}

func proposalDetail(engine *governance.Engine, id uint64) (detail ProposalDetail, err error) {
	var p governance.Proposal
	if p, err = engine.Proposal(id); err != nil {
		return
	}

	detail = ProposalDetail{
		Proposal: p,
		Hash:     p.Hash(),
		Tallies:  map[governance.Stage]governance.Tally{},
	}

	var t governance.Tally
	switch p.Kind {
	case governance.KindInternal:
		if t, err = engine.InternalTally(id); err != nil {
			return
		}
		detail.Tallies[governance.StageInternal] = t
	case governance.KindJoint:
		if t, err = engine.JointTally(id); err != nil {
			return
		}
		detail.Tallies[governance.StageJoint] = t

		if p.Stage == governance.StageCitizen {
			if t, err = engine.CitizenTally(id); err != nil {
				return
			}
			detail.Tallies[governance.StageCitizen] = t
		}
	}

	return
}

func listProposals(engine *governance.Engine, options storage.ListOptions) []governance.Proposal {
	proposals := []governance.Proposal{}

	iterFunc, closeFunc := engine.Proposals(options)
	defer closeFunc()

	for {
		p, hasNext := iterFunc()
		if !hasNext {
			break
		}
		proposals = append(proposals, p)
	}

	return proposals
}
