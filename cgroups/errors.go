package cgroups

import (
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/sys/unix"
)

// Error kinds. Every error returned by this package matches exactly one of
// them through errors.Is.
var (
	ErrPath          = errors.New("invalid cgroup path")
	ErrNotFound      = errors.New("control group not found")
	ErrAlreadyExists = errors.New("control group already exists")
	ErrPermission    = errors.New("permission denied")
	ErrStructural    = errors.New("rejected by cgroup structure rules")
	ErrMigration     = errors.New("process migration rejected")
	ErrExec          = errors.New("cannot launch command")

	// ErrIO covers filesystem failures outside the taxonomy above.
	ErrIO = errors.New("cgroup filesystem error")
)

// Error records a failed operation on a control group.
type Error struct {
	Op   string // create, control, restrict, classify, exec, resolve
	Path string // control group path, relative to the hierarchy root
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind }

func newError(op string, p Path, kind, err error) *Error {
	return &Error{Op: op, Path: p.String(), Kind: kind, Err: err}
}

// kindOf maps an OS error from the cgroup filesystem to an error kind.
func kindOf(err error) error {
	var errno unix.Errno
	switch {
	case errors.Is(err, fs.ErrPermission), errors.Is(err, unix.EROFS):
		return ErrPermission
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	case errors.As(err, &errno) && (errno == unix.EBUSY || errno == unix.EOPNOTSUPP || errno == unix.EINVAL || errno == unix.ENOTSUP):
		return ErrStructural
	}
	return ErrIO
}

// wrap builds an *Error whose kind is derived from err.
func wrap(op string, p Path, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return newError(op, p, kindOf(err), err)
}

// Kind returns the error kind carried by err, or nil if err did not
// originate in this package.
func Kind(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
