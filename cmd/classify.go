package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify PATH PID...",
	Short: "Move processes into a control group",
	Long: `Move processes, with all their threads, into a control group. PIDs may be
given as separate arguments or comma separated. With --auto the control group
is created if missing; controllers are not delegated.

` + pathHelp,
	Args: usageArgs(cobra.MinimumNArgs(2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		auto, _ := cmd.Flags().GetBool("auto")

		pids, err := parsePids(args[1:])
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		m, p, err := resolve(args[0])
		if err != nil {
			return err
		}
		if auto {
			return m.AutoClassify(p, pids...)
		}
		return m.Classify(p, pids...)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolP("auto", "a", false, "create the control group if missing")
}

func parsePids(args []string) ([]int, error) {
	var pids []int
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			pid, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || pid <= 0 {
				return nil, usagef("invalid process id %q", s)
			}
			pids = append(pids, pid)
		}
	}
	return pids, nil
}
