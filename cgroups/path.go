package cgroups

import (
	"errors"
	"strings"
)

// Path is a control group as the ordered list of directory names leading to
// it from the hierarchy root. The empty Path is the root itself.
type Path []string

func (p Path) String() string {
	return "/" + strings.Join(p, "/")
}

func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the enclosing control group. The root has no parent.
func (p Path) Parent() (Path, bool) {
	if p.IsRoot() {
		return nil, false
	}
	return p[: len(p)-1 : len(p)-1], true
}

// Ancestors returns every proper ancestor of p, root first.
func (p Path) Ancestors() []Path {
	out := make([]Path, 0, len(p))
	for i := 0; i < len(p); i++ {
		out = append(out, p[:i:i])
	}
	return out
}

// Child returns a copy of p extended by name.
func (p Path) Child(name string) Path {
	c := make(Path, len(p), len(p)+1)
	copy(c, p)
	return append(c, name)
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Resolve turns a user supplied path into a Path. A leading "/" makes it
// absolute from the hierarchy root, anything else is taken relative to self,
// the control group of the invoking process. "." segments are dropped and
// ".." climbs one level, but never above the root. Nothing is checked
// against the filesystem.
func Resolve(raw string, self Path) (Path, error) {
	if raw == "" {
		return nil, pathError(raw, errors.New("empty path"))
	}

	var stack Path
	rest := raw
	if strings.HasPrefix(raw, "/") {
		rest = strings.TrimLeft(raw, "/")
	} else {
		stack = append(stack, self...)
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" {
		return stack, nil
	}

	for _, seg := range strings.Split(rest, "/") {
		switch seg {
		case "":
			return nil, pathError(raw, errors.New("empty path segment"))
		case ".":
		case "..":
			if len(stack) == 0 {
				return nil, pathError(raw, errors.New("ascends above the hierarchy root"))
			}
			stack = stack[:len(stack)-1]
		default:
			if strings.ContainsAny(seg, "\x00\n") {
				return nil, pathError(raw, errors.New("segment contains a control character"))
			}
			stack = append(stack, seg)
		}
	}
	return stack, nil
}

// ParsePath resolves an absolute path such as the one found in
// /proc/<pid>/cgroup.
func ParsePath(abs string) (Path, error) {
	if !strings.HasPrefix(abs, "/") {
		return nil, pathError(abs, errors.New("not an absolute path"))
	}
	return Resolve(abs, nil)
}

func pathError(raw string, err error) error {
	return &Error{Op: "resolve", Path: raw, Kind: ErrPath, Err: err}
}
