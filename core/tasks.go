package core

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/taskgate/taskgate/pkg/crypto"
)

// DefaultStorageKey is the key the task collection is persisted under.
const DefaultStorageKey = "tasks"

// CreateTaskInput contains the fields callers supply when creating a task.
// Status is not an input - new tasks always start as pending.
type CreateTaskInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// UpdateTaskInput is a partial update. Nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
}

// StatusOnly reports whether the update touches nothing but the status
// field. Status-only updates are the one mutation open to non-admin roles.
func (in UpdateTaskInput) StatusOnly() bool {
	return in.Status != nil && in.Title == nil && in.Description == nil && in.Priority == nil
}

// TaskStore owns the canonical task collection and persists it through a
// KVStorage adapter.
//
// Every mutation rewrites the whole serialized collection - there is no
// incremental persistence. Mutations are serialized by an internal mutex, so
// no two mutations interleave within one process. Concurrent writers from
// separate processes sharing the same store are not coordinated; the last
// writer wins.
type TaskStore struct {
	storage KVStorage
	key     string
	logger  *slog.Logger
	nanoid  *crypto.NanoIDGenerator

	mu    sync.Mutex
	tasks []Task
}

func NewTaskStore(storage KVStorage, key string, logger *slog.Logger) *TaskStore {
	if key == "" {
		key = DefaultStorageKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		storage: storage,
		key:     key,
		logger:  logger,
		nanoid:  crypto.NewNanoID(),
	}
}

// Load reads the persisted collection into memory, replacing any in-memory
// state. An absent key yields an empty collection. A value that fails to
// parse, or parses but contains an invalid record, also yields an empty
// collection - a corrupt local cache must not block the caller, so the
// failure is logged and absorbed.
func (s *TaskStore) Load() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok, err := s.storage.Get(s.key)
	if err != nil {
		s.logger.Warn("failed to read task collection", "key", s.key, "error", err)
		s.tasks = []Task{}
		return s.snapshot()
	}
	if !ok {
		s.tasks = []Task{}
		return s.snapshot()
	}

	var tasks []Task
	if err := json.Unmarshal([]byte(value), &tasks); err != nil {
		s.logger.Warn("failed to parse task collection", "key", s.key, "error", err)
		s.tasks = []Task{}
		return s.snapshot()
	}

	for _, t := range tasks {
		if err := validateStored(t); err != nil {
			s.logger.Warn("discarding task collection with invalid record",
				"key", s.key, "id", t.ID, "error", err)
			s.tasks = []Task{}
			return s.snapshot()
		}
	}

	s.tasks = tasks
	return s.snapshot()
}

// Tasks returns a copy of the in-memory collection in insertion order.
func (s *TaskStore) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Create appends a new pending task and persists the collection.
//
// On a persistence failure the in-memory collection keeps the new task and
// the error is returned alongside it, so the caller can decide to retry or
// alert.
func (s *TaskStore) Create(in CreateTaskInput) (*Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	priority := in.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nanoid.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate task ID: %w", err)
	}

	now := time.Now()
	task := Task{
		ID:          id,
		Title:       title,
		Description: in.Description,
		Status:      StatusPending,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.tasks = append(s.tasks, task)

	if err := s.persist(); err != nil {
		return &task, err
	}
	return &task, nil
}

// Update merges the supplied fields over the task with the given ID and
// stamps UpdatedAt, whether or not any field actually changed. Returns
// ErrTaskNotFound without writing when the ID is unknown.
func (s *TaskStore) Update(id string, in UpdateTaskInput) (*Task, error) {
	if in.Status != nil && !in.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if in.Priority != nil && !in.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrTaskNotFound
	}

	task := s.tasks[idx]
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	task.UpdatedAt = time.Now()

	s.tasks[idx] = task

	if err := s.persist(); err != nil {
		return &task, err
	}
	return &task, nil
}

// Delete removes the task with the given ID, preserving the order of the
// remaining tasks. Returns false without writing when the ID is unknown.
func (s *TaskStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)

	if err := s.persist(); err != nil {
		return true, err
	}
	return true, nil
}

// Get returns the task with the given ID, or false when absent.
func (s *TaskStore) Get(id string) (*Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, false
	}

	task := s.tasks[idx]
	return &task, true
}

// persist serializes the whole collection and writes it under the store
// key. Callers must hold s.mu.
func (s *TaskStore) persist() error {
	data, err := json.Marshal(s.tasks)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoragePersist, err)
	}
	if err := s.storage.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrStoragePersist, err)
	}
	return nil
}

func (s *TaskStore) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) snapshot() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// validateStored checks the required fields of a persisted record.
func validateStored(t Task) error {
	if t.ID == "" {
		return fmt.Errorf("missing id")
	}
	if t.Title == "" {
		return ErrTitleRequired
	}
	if !t.Status.Valid() {
		return ErrInvalidStatus
	}
	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}
	if t.CreatedAt.IsZero() || t.UpdatedAt.IsZero() {
		return fmt.Errorf("missing timestamps")
	}
	return nil
}
