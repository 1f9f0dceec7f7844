package cgroups

import (
	"errors"
	"fmt"

	"cg2/cgroups/subsystems"

	"golang.org/x/sys/unix"
)

// Restrict writes each assignment to its interface file in p, in order. The
// writes are independent: a failed one is reported and the rest still run,
// and nothing already written is reverted. The returned error joins one
// *Error per failed assignment.
func (m *CgroupManager) Restrict(p Path, assignments []subsystems.Assignment) error {
	if err := m.mustExist("restrict", p); err != nil {
		return err
	}
	var errs []error
	for _, a := range assignments {
		if err := m.fs.WriteFile(p, a.File, []byte(a.Value)); err != nil {
			errs = append(errs, wrapAssignment(p, a, err))
			continue
		}
		entry(p).Infof("set %s=%q", a.File, a.Value)
	}
	return errors.Join(errs...)
}

// AutoRestrict prepares p before calling Restrict: missing control groups
// are created and the controllers owning the assigned files are enabled
// down the hierarchy. If preparation fails, nothing is written and the
// control groups created here are removed.
func (m *CgroupManager) AutoRestrict(p Path, assignments []subsystems.Assignment) error {
	undo, err := m.autoCreate(p)
	if err != nil {
		return err
	}
	for _, c := range subsystems.Required(assignments) {
		if err := m.AutoControl(p, c); err != nil {
			undo.rollback()
			return err
		}
	}
	undo.discard()
	return m.Restrict(p, assignments)
}

func wrapAssignment(p Path, a subsystems.Assignment, err error) error {
	e := newError("restrict", p, kindOf(err), fmt.Errorf("%s: %w", a.File, err))
	switch {
	case e.Kind == ErrNotFound && a.Controller() != "":
		e.Err = fmt.Errorf("%s is unavailable, is controller %q enabled for this group? %w", a.File, a.Controller(), err)
	case errors.Is(err, unix.EINVAL):
		e.Err = fmt.Errorf("invalid value %q for %s: %w", a.Value, a.File, err)
	}
	return e
}
