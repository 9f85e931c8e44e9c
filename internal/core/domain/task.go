package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Metadata holds free-form scalar annotations on a task. Values are limited
// to strings, numbers (float64), booleans and nil. It stays structured in
// memory; encoding to its at-rest form happens only in the persistence
// adapter.
type Metadata map[string]any

func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type Task struct {
	ID          string
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Metadata    Metadata
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	Metadata    Metadata
}

// UpdateTaskInput carries a partial update. The XSet flags distinguish a
// field that is absent from one explicitly set to null.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	Priority       *TaskPriority
	DueDate        *time.Time
	DueDateSet     bool
	Metadata       Metadata
	MetadataSet    bool
}
