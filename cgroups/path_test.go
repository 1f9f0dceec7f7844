package cgroups

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	self := Path{"x", "y"}
	for _, tc := range []struct {
		raw string
		want string
	}{
		{"/", "/"},
		{"//", "/"},
		{"//a", "/a"},
		{"///a/b", "/a/b"},
		{"/a/b", "/a/b"},
		{"/a/b/", "/a/b"},
		{"a", "/x/y/a"},
		{".", "/x/y"},
		{"./a/./b", "/x/y/a/b"},
		{"..", "/x"},
		{"../a", "/x/a"},
		{"../..", "/"},
		{"/a/../b", "/b"},
		{"/..x", "/..x"},
	} {
		p, err := Resolve(tc.raw, self)
		require.NoError(t, err, tc.raw)
		require.Equal(t, tc.want, p.String(), tc.raw)
	}
}

func TestResolveInvalid(t *testing.T) {
	self := Path{"x", "y"}
	for _, raw := range []string{
		"",
		"../../..",
		"/..",
		"a//b",
		"a\nb",
	} {
		_, err := Resolve(raw, self)
		require.ErrorIs(t, err, ErrPath, "%q", raw)
	}
}

func TestResolveDoesNotAliasSelf(t *testing.T) {
	self := make(Path, 2, 8)
	copy(self, Path{"x", "y"})

	a, err := Resolve("a", self)
	require.NoError(t, err)
	b, err := Resolve("b", self)
	require.NoError(t, err)
	require.Equal(t, "/x/y/a", a.String())
	require.Equal(t, "/x/y/b", b.String())
}

func TestPathAncestors(t *testing.T) {
	var got []string
	for _, a := range (Path{"a", "b", "c"}).Ancestors() {
		got = append(got, a.String())
	}
	require.Equal(t, []string{"/", "/a", "/a/b"}, got)
	require.Empty(t, Path{}.Ancestors())

	parent, ok := Path{"a", "b"}.Parent()
	require.True(t, ok)
	require.True(t, parent.Equal(Path{"a"}))
	_, ok = Path{}.Parent()
	require.False(t, ok)
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath("/system.slice/cg2.service")
	require.NoError(t, err)
	require.Equal(t, Path{"system.slice", "cg2.service"}, p)

	_, err = ParsePath("relative")
	require.ErrorIs(t, err, ErrPath)
}
