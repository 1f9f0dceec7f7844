package cgroups

import (
	"io/fs"
	"os"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	CgroupProcs          = "cgroup.procs"
	CgroupControllers    = "cgroup.controllers"
	CgroupSubtreeControl = "cgroup.subtree_control"

	dirPerm = 0o755
)

// FS is the view of the cgroup filesystem the Manager works through. Every
// call goes to the filesystem; nothing is cached.
type FS interface {
	Stat(p Path) (fs.FileInfo, error)
	Mkdir(p Path) error
	// Rmdir removes a control group that has no children and no members.
	Rmdir(p Path) error
	ReadFile(p Path, name string) ([]byte, error)
	// WriteFile writes data to an existing interface file with a single
	// write call. Interface files are never created or truncated.
	WriteFile(p Path, name string, data []byte) error
}

// NewFS returns an FS rooted at the cgroup2 mount point root.
func NewFS(root string) FS {
	return &osFS{root: root}
}

type osFS struct {
	root string
}

func (f *osFS) dir(p Path) (string, error) {
	d, err := securejoin.SecureJoin(f.root, p.String())
	if err != nil {
		return "", errors.Wrapf(err, "resolve %s under %s", p, f.root)
	}
	return d, nil
}

func (f *osFS) file(p Path, name string) (string, error) {
	return f.dir(p.Child(name))
}

func (f *osFS) Stat(p Path) (fs.FileInfo, error) {
	d, err := f.dir(p)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(d)
	return fi, errors.WithStack(err)
}

func (f *osFS) Mkdir(p Path) error {
	d, err := f.dir(p)
	if err != nil {
		return err
	}
	return errors.WithStack(retryEINTR(func() error { return os.Mkdir(d, dirPerm) }))
}

func (f *osFS) Rmdir(p Path) error {
	d, err := f.dir(p)
	if err != nil {
		return err
	}
	return errors.WithStack(retryEINTR(func() error { return os.Remove(d) }))
}

// ReadFile reads cgroup file and handles potential EINTR error while reading
// the slow device (cgroup)
func (f *osFS) ReadFile(p Path, name string) ([]byte, error) {
	fn, err := f.file(p, name)
	if err != nil {
		return nil, err
	}
	var data []byte
	err = retryEINTR(func() (err error) {
		data, err = os.ReadFile(fn)
		return err
	})
	return data, errors.WithStack(err)
}

func (f *osFS) WriteFile(p Path, name string, data []byte) error {
	fn, err := f.file(p, name)
	if err != nil {
		return err
	}
	file, err := os.OpenFile(fn, os.O_WRONLY, 0)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	var n int
	err = retryEINTR(func() (err error) {
		n, err = file.Write(data)
		return err
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if n != len(data) {
		return errors.Errorf("short write to %s: %d of %d bytes", fn, n, len(data))
	}
	return nil
}

// retryEINTR restarts a syscall interrupted by a signal.
func retryEINTR(fn func() error) error {
	err := fn()
	for err != nil && errors.Is(err, unix.EINTR) {
		err = fn()
	}
	return err
}
