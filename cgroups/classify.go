package cgroups

import (
	"errors"
	"fmt"
	"strconv"
)

// Classify moves each process, with all its threads, into p by writing its
// id to cgroup.procs. Every pid is attempted; the returned error joins one
// *Error per rejected process.
func (m *CgroupManager) Classify(p Path, pids ...int) error {
	if err := m.mustExist("classify", p); err != nil {
		return err
	}
	var errs []error
	for _, pid := range pids {
		if err := m.migrate("classify", p, pid); err != nil {
			errs = append(errs, err)
			continue
		}
		entry(p).Infof("classified process %d", pid)
	}
	return errors.Join(errs...)
}

// AutoClassify creates p as AutoCreate does, then classifies the processes.
// Controller delegation is not touched.
func (m *CgroupManager) AutoClassify(p Path, pids ...int) error {
	if err := m.AutoCreate(p); err != nil {
		return err
	}
	return m.Classify(p, pids...)
}

func (m *CgroupManager) migrate(op string, p Path, pid int) error {
	if pid <= 0 {
		return newError(op, p, ErrMigration, fmt.Errorf("invalid process id %d", pid))
	}
	if err := m.fs.WriteFile(p, CgroupProcs, []byte(strconv.Itoa(pid))); err != nil {
		return newError(op, p, ErrMigration, fmt.Errorf("process %d: %w", pid, err))
	}
	return nil
}
