package cgroups

import (
	"errors"
	"fmt"
	"os"
)

// Exec runs argv inside p without a supervising parent: the calling process
// first moves itself into p and then replaces its own image with the
// command. There is no fork, so no process ever runs the command outside p.
//
// p must already exist. Exec only returns on failure. An error of kind
// ErrExec means the move already happened and the process stays in p.
func (m *CgroupManager) Exec(p Path, argv []string) error {
	if len(argv) == 0 || argv[0] == "" {
		return errors.New("exec: no command given")
	}
	if err := m.mustExist("exec", p); err != nil {
		return err
	}

	pid := m.getpid()
	if err := m.migrate("exec", p, pid); err != nil {
		return err
	}
	entry(p).Debugf("moved process %d, executing %q", pid, argv[0])

	bin, err := m.lookPath(argv[0])
	if err != nil {
		return newError("exec", p, ErrExec, err)
	}
	err = m.execve(bin, argv, os.Environ())
	return newError("exec", p, ErrExec, fmt.Errorf("%s: %w", bin, err))
}
