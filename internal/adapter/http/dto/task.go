package dto

// Timestamps and due dates travel as RFC 3339 strings with nanosecond
// precision so a round trip through the wire format is exact.

type TaskItem struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	Status      string         `json:"status"`
	Priority    string         `json:"priority"`
	DueDate     *string        `json:"due_date,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string         `json:"title" binding:"required,max=255"`
	Description *string        `json:"description" binding:"omitempty,max=65535"`
	Status      *string        `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority    *string        `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *string        `json:"due_date"`
	Metadata    map[string]any `json:"metadata"`
}

type UpdateTaskRequest struct {
	Title       *string        `json:"title" binding:"omitempty,max=255"`
	Description *string        `json:"description" binding:"omitempty,max=65535"`
	Status      *string        `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority    *string        `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *string        `json:"due_date"`
	Metadata    map[string]any `json:"metadata"`
}

type DeleteConfirmation struct {
	Message string `json:"message"`
}
