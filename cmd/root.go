package cmd

import (
	"cg2/cgroups"
	"cg2/cgroups/subsystems"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const pathHelp = `PATH names a control group. A leading "/" makes it absolute from the
hierarchy root, anything else is relative to the control group of cg2 itself
and may use ".." to reach siblings.`

var rootCmd = &cobra.Command{
	Use:   "cg2",
	Short: "cg2 manipulates unified control groups (cgroups v2) in a delegated subtree.",
	Long: `cg2 manipulates unified control groups (cgroups v2) through the cgroup
filesystem. It is meant for services started with Delegate=yes, which own a
subtree of the hierarchy.

` + pathHelp,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := configLogrus(cmd); err != nil {
			return usageError{err}
		}
		if cgroupRoot == "" {
			cgroupRoot = subsystems.FindCgroupMountPoint()
		}
		return nil
	},
}

var cgroupRoot string

func init() {
	rootCmd.PersistentFlags().StringVar(&cgroupRoot, "root", os.Getenv("CG2_ROOT"), "mount point of the cgroup2 hierarchy (default $CG2_ROOT, else found in /proc/self/mountinfo)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("log", "", "set the log file to write logs to (default is '/dev/stderr')")
	rootCmd.PersistentFlags().String("log-format", "text", "set the log format ('text', 'json' or 'journal')")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

// newManager checks that the hierarchy root really is cgroup v2 and returns a
// manager anchored at the control group of this process.
var newManager = func() (*cgroups.CgroupManager, error) {
	ok, err := subsystems.IsCgroup2(cgroupRoot)
	if err != nil {
		return nil, fmt.Errorf("inspect cgroup root %s: %w", cgroupRoot, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s is not a cgroup2 mount, only the unified hierarchy is supported", cgroupRoot)
	}
	return cgroups.NewCgroupManager(cgroupRoot)
}

// resolve builds a manager and resolves the user supplied path with it.
func resolve(raw string) (*cgroups.CgroupManager, cgroups.Path, error) {
	m, err := newManager()
	if err != nil {
		return nil, nil, err
	}
	p, err := m.Resolve(raw)
	if err != nil {
		return nil, nil, err
	}
	return m, p, nil
}
