package cmd

import (
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create PATH",
	Short: "Create a control group",
	Long: `Create a control group. Its parent must exist and the group itself must not.

` + pathHelp,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		m, p, err := resolve(args[0])
		if err != nil {
			return err
		}
		return m.Create(p)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
