package cmd

import (
	"cg2/cgroups"
	"cg2/cgroups/subsystems"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var controlCmd = &cobra.Command{
	Use:   "control PATH [+CONTROLLER|-CONTROLLER]...",
	Short: "List, enable or disable the controllers of a control group",
	Long: `Enable (+name) or disable (-name) controllers for a control group by
writing to the cgroup.subtree_control file of its parent. Tokens may be given
as separate arguments or comma separated, as in +cpu,+memory. Without tokens
the controllers available to the group and those it delegates are listed.

With --auto the group is created if missing, and enabled controllers are
delegated down from the hierarchy root to the group.

` + pathHelp,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		auto, _ := cmd.Flags().GetBool("auto")
		inherit, _ := cmd.Flags().GetString("inherit")

		toggles, err := subsystems.ParseToggles(args[1:])
		if err != nil {
			return usageError{err}
		}
		if inherit != "" && len(toggles) > 0 {
			return usagef("--inherit cannot be combined with a controller list")
		}
		cmd.SilenceUsage = true

		m, p, err := resolve(args[0])
		if err != nil {
			return err
		}
		if inherit != "" {
			toggles, err = inheritedToggles(m, inherit)
			if err != nil {
				return err
			}
		}

		if len(toggles) == 0 && inherit == "" {
			if auto {
				if err := m.AutoCreate(p); err != nil {
					return err
				}
			}
			set, err := m.Controllers(p)
			if err != nil {
				return err
			}
			renderControllers(cmd.OutOrStdout(), set)
			return nil
		}

		if auto {
			return m.AutoDelegate(p, toggles)
		}
		for _, t := range toggles {
			if err := m.Control(p, t); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(controlCmd)
	controlCmd.Flags().BoolP("auto", "a", false, "create the control group if missing and delegate enabled controllers from the root down")
	controlCmd.Flags().String("inherit", "", "enable every controller available in the given control group")
}

// inheritedToggles enables whatever is available to another control group.
// That group is never created, even with --auto.
func inheritedToggles(m *cgroups.CgroupManager, raw string) ([]subsystems.Toggle, error) {
	src, err := m.Resolve(raw)
	if err != nil {
		return nil, err
	}
	set, err := m.Controllers(src)
	if err != nil {
		return nil, err
	}
	toggles := make([]subsystems.Toggle, 0, len(set.Available))
	for _, c := range set.Available {
		toggles = append(toggles, subsystems.Toggle{Controller: c, Enable: true})
	}
	return toggles, nil
}

func renderControllers(w io.Writer, set *cgroups.ControllerSet) {
	delegated := map[string]bool{}
	for _, c := range set.Delegated {
		delegated[c] = true
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"CONTROLLER", "AVAILABLE", "DELEGATED"})
	seen := map[string]bool{}
	for _, c := range set.Available {
		seen[c] = true
		table.Append([]string{c, "yes", yesNo(delegated[c])})
	}
	for _, c := range set.Delegated {
		if !seen[c] {
			table.Append([]string{c, "no", "yes"})
		}
	}
	table.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
