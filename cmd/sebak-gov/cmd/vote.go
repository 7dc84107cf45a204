package cmd

import (
	"github.com/spf13/cobra"

	"boscoin.io/sebak-gov/cmd/sebak-gov/common"
	"boscoin.io/sebak-gov/lib/governance"
	"boscoin.io/sebak-gov/lib/registry"
)

var voteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Cast the vote to the proposal",
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

// voteRunner parses `<proposal id> <voter> <vote>` and calls cast.
func voteRunner(voterName string, cast func(id uint64, voter string, approve bool) (governance.Proposal, error)) func(*cobra.Command, []string) {
	return func(c *cobra.Command, args []string) {
		id, err := common.ParseProposalID(args[0])
		if err != nil {
			common.PrintError(c, err)
		}

		approve, err := common.ParseApprove(args[2])
		if err != nil {
			common.PrintError(c, err)
		}

		prepareEngine(c)
		defer closeEngine()

		p, err := cast(id, args[1], approve)
		if err != nil {
			closeEngine()
			common.ExitWithRejection(err)
		}

		log.Debug("vote accepted", "proposal", id, voterName, args[1], "approve", approve)
		output(p)
	}
}

func castJointVote(id uint64, institution string, approve bool) (governance.Proposal, error) {
	member, err := common.ParseMemberID(institution)
	if err != nil {
		return governance.Proposal{}, err
	}

	return engine.SubmitJointInstitutionVote(id, registry.MemberID(member), approve)
}

func init() {
	internalCmd := &cobra.Command{
		Use:   "internal <proposal id> <voter address> <yes|no>",
		Short: "Cast the internal vote of the organization member",
		Args:  cobra.ExactArgs(3),
		Run: voteRunner("voter", func(id uint64, voter string, approve bool) (governance.Proposal, error) {
			return engine.CastInternalVote(voter, id, approve)
		}),
	}

	jointCmd := &cobra.Command{
		Use:   "joint <proposal id> <institution id> <internal passed: yes|no>",
		Short: "Submit the result of the internal vote of the institution",
		Args:  cobra.ExactArgs(3),
		Run:   voteRunner("institution", castJointVote),
	}

	citizenCmd := &cobra.Command{
		Use:   "citizen <proposal id> <citizen address> <yes|no>",
		Short: "Cast the vote of the citizen",
		Args:  cobra.ExactArgs(3),
		Run: voteRunner("citizen", func(id uint64, citizen string, approve bool) (governance.Proposal, error) {
			return engine.CastCitizenVote(citizen, id, approve)
		}),
	}

	voteCmd.AddCommand(internalCmd, jointCmd, citizenCmd)
	rootCmd.AddCommand(voteCmd)
}
