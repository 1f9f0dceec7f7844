package cgroups

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"cg2/cgroups/subsystems"

	"golang.org/x/sys/unix"
)

// Control applies t to the cgroup.subtree_control file of p's parent.
// Whether p may use a controller is decided by its parent, so this also
// affects the siblings of p.
func (m *CgroupManager) Control(p Path, t subsystems.Toggle) error {
	parent, ok := p.Parent()
	if !ok {
		return newError("control", p, ErrPath, errors.New("the hierarchy root has no parent to delegate from"))
	}
	if err := m.mustExist("control", p); err != nil {
		return err
	}
	return m.delegate(parent, t)
}

// AutoControl makes controller available to p by enabling it in the
// cgroup.subtree_control of every ancestor, from the root down to the
// parent of p. A parent can only hand a controller to its children once its
// own parent has handed it down, so the order matters. Ancestors that
// already delegate the controller are left alone.
func (m *CgroupManager) AutoControl(p Path, controller string) error {
	t := subsystems.Toggle{Controller: controller, Enable: true}
	for _, a := range p.Ancestors() {
		ok, err := m.delegates(a, controller)
		if err != nil {
			return err
		}
		if ok {
			entry(a).Debugf("controller %q already enabled for subgroups", controller)
			continue
		}
		if err := m.delegate(a, t); err != nil {
			// Refused, but possibly because someone else enabled it meanwhile.
			if ok, _ := m.delegates(a, controller); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// AutoDelegate creates p if needed and applies toggles to it. Enabled
// controllers go through AutoControl, disabled ones through Control. On
// failure the control groups created here are removed again; toggles that
// already took effect stay.
func (m *CgroupManager) AutoDelegate(p Path, toggles []subsystems.Toggle) error {
	undo, err := m.autoCreate(p)
	if err != nil {
		return err
	}
	for _, t := range toggles {
		if t.Enable {
			err = m.AutoControl(p, t.Controller)
		} else {
			err = m.Control(p, t)
		}
		if err != nil {
			undo.rollback()
			return err
		}
	}
	undo.discard()
	return nil
}

func (m *CgroupManager) delegate(node Path, t subsystems.Toggle) error {
	if t.Enable {
		m.warnIfPopulated(node)
	}
	if err := m.fs.WriteFile(node, CgroupSubtreeControl, []byte(t.String())); err != nil {
		// node exists at this point; ENOENT and EINVAL name the controller.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.EINVAL) {
			return newError("control", node, ErrStructural,
				fmt.Errorf("controller %q is not available to %s: %w", t.Controller, node, err))
		}
		return wrap("control", node, err)
	}
	if t.Enable {
		entry(node).Infof("enabled controller %q for subgroups", t.Controller)
	} else {
		entry(node).Infof("disabled controller %q for subgroups", t.Controller)
	}
	return nil
}

// delegates reports whether node lists controller in its
// cgroup.subtree_control.
func (m *CgroupManager) delegates(node Path, controller string) (bool, error) {
	set, err := m.readList("control", node, CgroupSubtreeControl)
	if err != nil {
		return false, err
	}
	for _, c := range set {
		if c == controller {
			return true, nil
		}
	}
	return false, nil
}

// warnIfPopulated flags a non-root node that has member processes, since
// such a node cannot hand domain controllers to its children.
func (m *CgroupManager) warnIfPopulated(node Path) {
	if node.IsRoot() {
		return
	}
	procs, err := m.fs.ReadFile(node, CgroupProcs)
	if err != nil {
		entry(node).WithError(err).Debug("cannot read member processes")
		return
	}
	if len(strings.TrimSpace(string(procs))) > 0 {
		entry(node).Warn("control group owns processes; enabling controllers for its subgroups may be rejected or turn it into a threaded domain, see https://docs.kernel.org/admin-guide/cgroup-v2.html")
	}
}

// ControllerSet describes the controllers of one control group.
type ControllerSet struct {
	// Available lists the controllers p may use, from cgroup.controllers.
	Available []string
	// Delegated lists the controllers enabled for the children of p, from
	// cgroup.subtree_control.
	Delegated []string
}

// Controllers reads the controller files of p.
func (m *CgroupManager) Controllers(p Path) (*ControllerSet, error) {
	if err := m.mustExist("control", p); err != nil {
		return nil, err
	}
	available, err := m.readList("control", p, CgroupControllers)
	if err != nil {
		return nil, err
	}
	delegated, err := m.readList("control", p, CgroupSubtreeControl)
	if err != nil {
		return nil, err
	}
	return &ControllerSet{Available: available, Delegated: delegated}, nil
}

func (m *CgroupManager) readList(op string, p Path, name string) ([]string, error) {
	b, err := m.fs.ReadFile(p, name)
	if err != nil {
		return nil, wrap(op, p, err)
	}
	return strings.Fields(string(b)), nil
}
