package cgroups

// Create makes the control group p. Its parent must already exist and p
// itself must not.
func (m *CgroupManager) Create(p Path) error {
	if p.IsRoot() {
		return newError("create", p, ErrAlreadyExists, nil)
	}
	if err := m.fs.Mkdir(p); err != nil {
		return wrap("create", p, err)
	}
	entry(p).Info("created control group")
	return nil
}

// AutoCreate makes p and any missing ancestors, top-down. An existing p is
// left alone. If a step fails, the control groups created by this call are
// removed again before the error is returned.
func (m *CgroupManager) AutoCreate(p Path) error {
	undo, err := m.autoCreate(p)
	if err != nil {
		return err
	}
	undo.discard()
	return nil
}

// autoCreate is AutoCreate for callers with further steps to take. The
// returned log still holds what was created so that a failure in a later
// step can undo it.
func (m *CgroupManager) autoCreate(p Path) (*undoLog, error) {
	undo := &undoLog{fs: m.fs}
	plan, err := m.creationPlan(p)
	if err != nil {
		return nil, err
	}
	if len(plan) == 0 {
		entry(p).Debug("control group already exists")
	}
	for _, q := range plan {
		if err := m.Create(q); err != nil {
			undo.rollback()
			return nil, err
		}
		undo.push(q)
	}
	return undo, nil
}

// creationPlan returns the control groups missing between the deepest
// existing ancestor of p and p itself, root side first.
func (m *CgroupManager) creationPlan(p Path) ([]Path, error) {
	var missing []Path
	for q := p; !q.IsRoot(); q, _ = q.Parent() {
		ok, err := m.Exists(q)
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		missing = append(missing, q)
	}
	for i, j := 0, len(missing)-1; i < j; i, j = i+1, j-1 {
		missing[i], missing[j] = missing[j], missing[i]
	}
	return missing, nil
}

// undoLog records the control groups created during one operation.
type undoLog struct {
	fs      FS
	created []Path
}

func (u *undoLog) push(p Path) {
	u.created = append(u.created, p)
}

func (u *undoLog) discard() {
	u.created = nil
}

// rollback removes the recorded control groups, newest first. Failures are
// logged; the caller reports the error that caused the rollback.
func (u *undoLog) rollback() {
	for i := len(u.created) - 1; i >= 0; i-- {
		p := u.created[i]
		if err := u.fs.Rmdir(p); err != nil {
			entry(p).WithError(err).Warn("could not remove control group during rollback")
			continue
		}
		entry(p).Info("removed control group")
	}
	u.created = nil
}
