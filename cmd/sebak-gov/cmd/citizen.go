package cmd

import (
	"github.com/spf13/cobra"

	"boscoin.io/sebak-gov/cmd/sebak-gov/common"
	"boscoin.io/sebak-gov/lib/registry"
	"boscoin.io/sebak-gov/lib/storage"
)

var citizenCmd = &cobra.Command{
	Use:   "citizen",
	Short: "Manage the citizen roll",
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Print the organizations and institutions of the constitution",
	Run: func(c *cobra.Command, args []string) {
		parseFlags(c)

		output(registry.Constitution.Members())
	},
}

func listCitizens(roll *registry.CitizenRoll, options storage.ListOptions) []registry.Citizen {
	citizens := []registry.Citizen{}

	iterFunc, closeFunc := roll.Citizens(options)
	defer closeFunc()

	for {
		citizen, hasNext := iterFunc()
		if !hasNext {
			break
		}
		citizens = append(citizens, citizen)
	}

	return citizens
}

func init() {
	registerCmd := &cobra.Command{
		Use:   "register <address>",
		Short: "Register the account address as the eligible citizen",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			prepareEngine(c)
			defer closeEngine()

			citizen, err := roll.Register(args[0], height)
			if err != nil {
				closeEngine()
				common.ExitWithRejection(err)
			}
			output(citizen)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the citizens in the registered order",
		Run: func(c *cobra.Command, args []string) {
			prepareEngine(c)
			defer closeEngine()

			output(listCitizens(roll, storage.NewDefaultListOptions(flagReverse, nil, flagLimit)))
		},
	}
	listCmd.Flags().BoolVar(&flagReverse, "reverse", false, "list in reverse order")
	listCmd.Flags().Uint64Var(&flagLimit, "limit", 0, "maximum number of citizens, 0 is unlimited")

	citizenCmd.AddCommand(registerCmd, listCmd)
	rootCmd.AddCommand(citizenCmd, membersCmd)
}
