package cmd

import (
	"cg2/cgroups"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	notFound := &cgroups.Error{Op: "control", Path: "/a", Kind: cgroups.ErrNotFound}
	migration := &cgroups.Error{Op: "classify", Path: "/a", Kind: cgroups.ErrMigration}

	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
	require.Equal(t, ExitUsage, ExitCode(usagef("bad flag")))
	require.Equal(t, ExitNotFound, ExitCode(notFound))
	require.Equal(t, ExitNotFound, ExitCode(fmt.Errorf("wrapped: %w", notFound)))
	require.Equal(t, ExitMigration, ExitCode(errors.Join(migration, notFound)))
	require.Equal(t, ExitExec, ExitCode(&cgroups.Error{Op: "exec", Kind: cgroups.ErrExec}))

	_, err := cgroups.Resolve("../..", cgroups.Path{"a"})
	require.Equal(t, ExitPath, ExitCode(err))
}

func TestParsePids(t *testing.T) {
	pids, err := parsePids([]string{"1,2", "30"})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 30}, pids)

	for _, bad := range []string{"0", "-4", "abc", "1,,2", ""} {
		_, err := parsePids([]string{bad})
		require.Error(t, err, bad)
		require.Equal(t, ExitUsage, ExitCode(err), bad)
	}
}
