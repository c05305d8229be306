package core

// Consumer-facing operations. Reads are scoped and mutations gated by the
// resolved session the caller passes in; the gates are advisory, client-side
// checks with no server-side counterpart.

// Resolve computes the session view for a provider state snapshot.
func (t *Taskgate) Resolve(state SessionState) *Session {
	return t.Resolver.Resolve(state)
}

// VisibleTasks returns the role-scoped read model after applying the filter.
func (t *Taskgate) VisibleTasks(session *Session, filter Filter) []Task {
	return t.Policy.Visible(session, t.Store.Tasks(), filter)
}

// GetTask returns a task by ID, or false when absent.
func (t *Taskgate) GetTask(id string) (*Task, bool) {
	return t.Store.Get(id)
}

// StatusCounts tallies the full collection per status.
func (t *Taskgate) StatusCounts() map[Status]int {
	return StatusCounts(t.Store.Tasks())
}

// CreateTask creates a task. Admin only.
func (t *Taskgate) CreateTask(session *Session, in CreateTaskInput) (*Task, error) {
	if !t.Policy.CanCreate(session) {
		return nil, ErrNotAllowed
	}
	return t.Store.Create(in)
}

// UpdateTask applies a partial update. Full edits are admin only; an update
// restricted to the status field is open to any authenticated role.
func (t *Taskgate) UpdateTask(session *Session, id string, in UpdateTaskInput) (*Task, error) {
	if in.StatusOnly() {
		if !t.Policy.CanChangeStatus(session) {
			return nil, ErrNotAllowed
		}
	} else if !t.Policy.CanEdit(session) {
		return nil, ErrNotAllowed
	}
	return t.Store.Update(id, in)
}

// CycleTaskStatus advances a task to the next status in the
// pending -> in-progress -> completed cycle. Open to any authenticated role.
func (t *Taskgate) CycleTaskStatus(session *Session, id string) (*Task, error) {
	if !t.Policy.CanChangeStatus(session) {
		return nil, ErrNotAllowed
	}

	task, ok := t.Store.Get(id)
	if !ok {
		return nil, ErrTaskNotFound
	}

	next := NextStatus(task.Status)
	return t.Store.Update(id, UpdateTaskInput{Status: &next})
}

// DeleteTask removes a task. Admin only.
func (t *Taskgate) DeleteTask(session *Session, id string) (bool, error) {
	if !t.Policy.CanDelete(session) {
		return false, ErrNotAllowed
	}
	return t.Store.Delete(id)
}

// MirrorFor binds the credential mirror to a cookie sink. Sinks are usually
// per-request, so the mirror is built on demand rather than held on the
// Taskgate.
func (t *Taskgate) MirrorFor(sink CookieSink) *Mirror {
	return NewMirror(sink, t.Mirror)
}
