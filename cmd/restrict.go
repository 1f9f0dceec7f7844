package cmd

import (
	"cg2/cgroups/subsystems"

	"github.com/spf13/cobra"
)

var restrictCmd = &cobra.Command{
	Use:   "restrict PATH FILE=VALUE...",
	Short: "Write values to interface files of a control group",
	Long: `Write each value, as given, to the named interface file of a control group,
for example:

  cg2 restrict app cpu.max="50000 100000" memory.high=1G

The writes are independent; a rejected one is reported and the rest are still
attempted. With --auto the control group is created if missing and the
controllers owning the files are delegated down from the hierarchy root
before anything is written.

` + pathHelp,
	Args: usageArgs(cobra.MinimumNArgs(2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		auto, _ := cmd.Flags().GetBool("auto")

		assignments := make([]subsystems.Assignment, 0, len(args)-1)
		for _, arg := range args[1:] {
			a, err := subsystems.ParseAssignment(arg)
			if err != nil {
				return usageError{err}
			}
			assignments = append(assignments, a)
		}
		cmd.SilenceUsage = true

		m, p, err := resolve(args[0])
		if err != nil {
			return err
		}
		if auto {
			return m.AutoRestrict(p, assignments)
		}
		return m.Restrict(p, assignments)
	},
}

func init() {
	rootCmd.AddCommand(restrictCmd)
	restrictCmd.Flags().BoolP("auto", "a", false, "create the control group if missing and delegate the controllers it needs")
}
