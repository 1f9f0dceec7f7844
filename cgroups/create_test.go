package cgroups

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestCreate(t *testing.T) {
	m, f := newTestManager(t)

	require.NoError(t, m.Create(Path{"app"}))
	require.Equal(t, []string{"app"}, f.tree(t))

	err := m.Create(Path{"app"})
	require.ErrorIs(t, err, ErrAlreadyExists)

	err = m.Create(Path{"missing", "leaf"})
	require.ErrorIs(t, err, ErrNotFound)

	err = m.Create(Path{})
	require.ErrorIs(t, err, ErrAlreadyExists)

	require.Equal(t, []string{"app"}, f.tree(t))
}

func TestAutoCreateTopDown(t *testing.T) {
	m, f := newTestManager(t)

	require.NoError(t, m.AutoCreate(Path{"a", "b", "c"}))
	require.Equal(t, []string{"mkdir /a", "mkdir /a/b", "mkdir /a/b/c"}, f.ops)
	require.Equal(t, []string{"a", "a/b", "a/b/c"}, f.tree(t))
}

func TestAutoCreatePartial(t *testing.T) {
	m, f := newTestManager(t)
	require.NoError(t, m.Create(Path{"a"}))
	f.ops = nil

	require.NoError(t, m.AutoCreate(Path{"a", "b"}))
	require.Equal(t, []string{"mkdir /a/b"}, f.ops)

	f.ops = nil
	require.NoError(t, m.AutoCreate(Path{"a", "b"}))
	require.NoError(t, m.AutoCreate(Path{}))
	require.Empty(t, f.ops)
}

func TestAutoCreateRollback(t *testing.T) {
	m, f := newTestManager(t)
	require.NoError(t, m.Create(Path{"keep"}))
	before := f.tree(t)
	f.ops = nil

	f.fail["mkdir /keep/x/y"] = unix.EACCES
	err := m.AutoCreate(Path{"keep", "x", "y", "z"})
	require.ErrorIs(t, err, ErrPermission)
	require.Equal(t, []string{
		"mkdir /keep/x",
		"mkdir /keep/x/y",
		"rmdir /keep/x",
	}, f.ops)
	require.Equal(t, before, f.tree(t))
}

func TestAutoCreateRollbackFailureKeepsCause(t *testing.T) {
	m, f := newTestManager(t)

	f.fail["mkdir /a/b/c"] = unix.ENOSPC
	f.fail["rmdir /a/b"] = unix.EBUSY
	err := m.AutoCreate(Path{"a", "b", "c"})
	require.ErrorIs(t, err, ErrIO)
	require.ErrorIs(t, err, unix.ENOSPC)
	require.Equal(t, []string{
		"mkdir /a",
		"mkdir /a/b",
		"mkdir /a/b/c",
		"rmdir /a/b",
		"rmdir /a",
	}, f.ops)
}

func TestCreationPlan(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.AutoCreate(Path{"a", "b"}))

	plan, err := m.creationPlan(Path{"a", "b", "c", "d"})
	require.NoError(t, err)
	require.Len(t, plan, 2)
	require.Equal(t, "/a/b/c", plan[0].String())
	require.Equal(t, "/a/b/c/d", plan[1].String())

	plan, err = m.creationPlan(Path{"a"})
	require.NoError(t, err)
	require.Empty(t, plan)
}
