package cmd

import (
	"cg2/cgroups"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes, one per failure class.
const (
	ExitFailure    = 1
	ExitUsage      = 2
	ExitPath       = 3
	ExitNotFound   = 4
	ExitExists     = 5
	ExitPermission = 6
	ExitStructural = 7
	ExitMigration  = 8
	// ExitExec means cg2 exec moved itself into the target but could not
	// launch the command.
	ExitExec = 9
)

var exitCodes = map[error]int{
	cgroups.ErrPath:          ExitPath,
	cgroups.ErrNotFound:      ExitNotFound,
	cgroups.ErrAlreadyExists: ExitExists,
	cgroups.ErrPermission:    ExitPermission,
	cgroups.ErrStructural:    ExitStructural,
	cgroups.ErrMigration:     ExitMigration,
	cgroups.ErrExec:          ExitExec,
}

// ExitCode maps an error returned by Execute to the process exit status.
// For joined errors the first failure decides.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	if code, ok := exitCodes[cgroups.Kind(err)]; ok {
		return code
	}
	return ExitFailure
}

type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...interface{}) error {
	return usageError{fmt.Errorf(format, a...)}
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}
