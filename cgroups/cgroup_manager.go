package cgroups

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// CgroupManager carries out the operations of a single invocation against a
// cgroup2 hierarchy. Self, the control group of the calling process, is read
// once when the manager is created; everything else is observed on the
// filesystem at the moment it is needed.
type CgroupManager struct {
	Root string // mount point of the hierarchy
	Self Path

	fs       FS
	getpid   func() int
	lookPath func(file string) (string, error)
	execve   func(argv0 string, argv []string, envv []string) error
}

// NewCgroupManager returns a manager for the hierarchy mounted at root, with
// relative paths anchored at the control group of the calling process.
func NewCgroupManager(root string) (*CgroupManager, error) {
	self, err := ReadMembership(ProcSelfCgroup)
	if err != nil {
		return nil, err
	}
	entry(self).Debug("current control group")
	return New(root, self, NewFS(root)), nil
}

// New returns a manager working through fsys, the hierarchy mounted at root,
// that resolves relative paths against self.
func New(root string, self Path, fsys FS) *CgroupManager {
	return &CgroupManager{
		Root:     root,
		Self:     self,
		fs:       fsys,
		getpid:   os.Getpid,
		lookPath: exec.LookPath,
		execve:   unix.Exec,
	}
}

// Resolve resolves a user supplied path against the hierarchy and Self.
func (m *CgroupManager) Resolve(raw string) (Path, error) {
	return Resolve(raw, m.Self)
}

// Exists reports whether the control group p is present.
func (m *CgroupManager) Exists(p Path) (bool, error) {
	fi, err := m.fs.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, wrap("stat", p, err)
	}
	if !fi.IsDir() {
		return false, newError("stat", p, ErrPath, fmt.Errorf("not a control group directory"))
	}
	return true, nil
}

func (m *CgroupManager) mustExist(op string, p Path) error {
	ok, err := m.Exists(p)
	if err != nil {
		return err
	}
	if !ok {
		return newError(op, p, ErrNotFound, nil)
	}
	return nil
}

func entry(p Path) *log.Entry {
	return log.WithField("cgroup", p.String())
}
