package core

import "time"

// Credentials is the token triplet held by an authenticated session.
//
// An empty string means the token is not present on the session.
type Credentials struct {
	AccessToken  string `json:"-"` // Never expose in JSON
	IDToken      string `json:"-"` // Never expose in JSON
	RefreshToken string `json:"-"` // Never expose in JSON
}

// SessionState is a snapshot of the external session provider.
//
// This is the boundary type - the library only reads it. Sign-in, sign-out
// and token refresh remain the provider's job.
type SessionState struct {
	Authenticated bool
	Credentials   Credentials
}

// Session is the resolved view of a SessionState handed to consumers.
//
// Role and Groups are derived from the identity token's claims on every
// resolve; they are never stored.
type Session struct {
	Authenticated bool     `json:"authenticated"`
	Role          Role     `json:"role"`
	Groups        []string `json:"groups"`
	Claims        *Claims  `json:"claims,omitempty"`
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the recognized priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of trackable work.
//
// ID and CreatedAt are immutable after creation. UpdatedAt is refreshed on
// every mutation, so UpdatedAt >= CreatedAt always holds.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
