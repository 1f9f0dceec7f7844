package cmd

import (
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec PATH COMMAND [ARG]...",
	Short: "Run a command inside a control group",
	Long: `Move cg2 itself into a control group, then replace it with COMMAND. No
child process is forked, so the command keeps the pid, the standard streams
and the environment of cg2. COMMAND is looked up in $PATH. Options after
COMMAND are passed to it untouched.

` + pathHelp,
	Args: usageArgs(cobra.MinimumNArgs(2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		m, p, err := resolve(args[0])
		if err != nil {
			return err
		}
		// Exec only returns on failure.
		return m.Exec(p, args[1:])
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().SetInterspersed(false)
}
