package core

import "strings"

// Filter is the caller-supplied task query. Zero values mean "all".
type Filter struct {
	Search   string
	Status   Status
	Priority Priority
}

// Matches reports whether t passes the filter: the search term must be a
// case-insensitive substring of the title or description, and the status and
// priority must equal the filtered values when set.
func (f Filter) Matches(t Task) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) {
			return false
		}
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	return true
}

// Assignment decides which of the filtered tasks a role may see.
//
// The data model has no per-user assignment relation yet, so this is a port:
// plug in a real relation (e.g. an assignedTo field) without touching the
// policy.
type Assignment interface {
	Visible(role Role, tasks []Task) []Task
}

// SplitAssignment is the default assignment: admins see everything, every
// other role sees the first half (rounded up) of the filtered collection.
//
// A stand-in for a real assignment relation, kept for parity with the
// behavior this library replaces.
type SplitAssignment struct{}

func (SplitAssignment) Visible(role Role, tasks []Task) []Task {
	if role == RoleAdmin {
		return tasks
	}
	return tasks[:(len(tasks)+1)/2]
}

var _ Assignment = SplitAssignment{}

// Policy computes the role-scoped read model and gates mutation intents.
type Policy struct {
	assignment Assignment
}

func NewPolicy(assignment Assignment) *Policy {
	if assignment == nil {
		assignment = SplitAssignment{}
	}
	return &Policy{assignment: assignment}
}

// Visible applies the query filter first, then scopes the result by the
// session's role through the assignment.
func (p *Policy) Visible(session *Session, tasks []Task, filter Filter) []Task {
	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Matches(t) {
			filtered = append(filtered, t)
		}
	}
	return p.assignment.Visible(session.Role, filtered)
}

// Mutation gates. Create, full edit and delete are admin-only; a status-only
// transition is open to any authenticated role.

func (p *Policy) CanCreate(session *Session) bool {
	return session.Role == RoleAdmin
}

func (p *Policy) CanEdit(session *Session) bool {
	return session.Role == RoleAdmin
}

func (p *Policy) CanDelete(session *Session) bool {
	return session.Role == RoleAdmin
}

func (p *Policy) CanChangeStatus(session *Session) bool {
	return session.Authenticated && session.Role != RoleNone
}

// NextStatus cycles pending -> in-progress -> completed -> pending.
// Total function with period 3; unknown statuses restart at pending.
func NextStatus(s Status) Status {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	case StatusCompleted:
		return StatusPending
	default:
		return StatusPending
	}
}

// StatusCounts tallies tasks per status, for dashboard-style summaries.
func StatusCounts(tasks []Task) map[Status]int {
	counts := make(map[Status]int, 3)
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}
