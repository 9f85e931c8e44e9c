package validation

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Nazary21/Teammatic/internal/adapter/http/dto"
	"github.com/Nazary21/Teammatic/internal/adapter/http/mapper"
	"github.com/Nazary21/Teammatic/internal/core/domain"
)

// BuildCreateTaskInput validates a bound create payload against the raw JSON
// body and produces a fully-typed input. It never touches persisted state;
// all violations are collected so the caller can report every failing field
// at once.
func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, FieldErrors) {
	fieldErrors := FieldErrors{}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		fieldErrors["title"] = "is required"
	}

	status := domain.TaskStatusTodo
	if hasJSONField(raw, "status") && req.Status == nil {
		fieldErrors["status"] = "has the wrong type"
	}
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
		if !status.Valid() {
			fieldErrors["status"] = "must be one of TODO, IN_PROGRESS, DONE"
		}
	}

	priority := domain.TaskPriorityMedium
	if hasJSONField(raw, "priority") && req.Priority == nil {
		fieldErrors["priority"] = "has the wrong type"
	}
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
		if !priority.Valid() {
			fieldErrors["priority"] = "must be one of LOW, MEDIUM, HIGH"
		}
	}

	input := domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
	}

	if req.DueDate != nil {
		dueDate, err := mapper.ParseTime(*req.DueDate)
		if err != nil {
			fieldErrors["due_date"] = "must be an RFC 3339 timestamp"
		} else {
			input.DueDate = &dueDate
		}
	}

	if req.Metadata != nil {
		metadata, ok := metadataFromPayload(req.Metadata)
		if !ok {
			fieldErrors["metadata"] = "values must be strings, numbers, booleans or null"
		} else {
			input.Metadata = metadata
		}
	}

	if len(fieldErrors) > 0 {
		return domain.CreateTaskInput{}, fieldErrors
	}
	return input, nil
}

// BuildUpdateTaskInput validates a partial update. Every field is optional,
// but fields present in the raw body must still carry the right type, and a
// present-but-null field means "clear".
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, FieldErrors) {
	fieldErrors := FieldErrors{}

	if !hasTaskUpdateFields(raw) {
		fieldErrors["body"] = "must contain at least one updatable field"
		return domain.UpdateTaskInput{}, fieldErrors
	}

	input := domain.UpdateTaskInput{}

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			fieldErrors["title"] = "has the wrong type"
		} else {
			value := strings.TrimSpace(*req.Title)
			if value == "" {
				fieldErrors["title"] = "must not be empty"
			} else {
				input.Title = &value
			}
		}
	}

	if hasJSONField(raw, "description") {
		input.DescriptionSet = true
		if !isJSONNull(raw["description"]) {
			if req.Description == nil {
				fieldErrors["description"] = "has the wrong type"
			} else {
				input.Description = req.Description
			}
		}
	}

	if hasJSONField(raw, "status") {
		if req.Status == nil {
			fieldErrors["status"] = "has the wrong type"
		} else {
			value := domain.TaskStatus(*req.Status)
			if !value.Valid() {
				fieldErrors["status"] = "must be one of TODO, IN_PROGRESS, DONE"
			} else {
				input.Status = &value
			}
		}
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			fieldErrors["priority"] = "has the wrong type"
		} else {
			value := domain.TaskPriority(*req.Priority)
			if !value.Valid() {
				fieldErrors["priority"] = "must be one of LOW, MEDIUM, HIGH"
			} else {
				input.Priority = &value
			}
		}
	}

	if hasJSONField(raw, "due_date") {
		input.DueDateSet = true
		if !isJSONNull(raw["due_date"]) {
			if req.DueDate == nil {
				fieldErrors["due_date"] = "has the wrong type"
			} else {
				dueDate, err := mapper.ParseTime(*req.DueDate)
				if err != nil {
					fieldErrors["due_date"] = "must be an RFC 3339 timestamp"
				} else {
					input.DueDate = &dueDate
				}
			}
		}
	}

	if hasJSONField(raw, "metadata") {
		input.MetadataSet = true
		if !isJSONNull(raw["metadata"]) {
			if req.Metadata == nil {
				fieldErrors["metadata"] = "has the wrong type"
			} else {
				metadata, ok := metadataFromPayload(req.Metadata)
				if !ok {
					fieldErrors["metadata"] = "values must be strings, numbers, booleans or null"
				} else {
					input.Metadata = metadata
				}
			}
		}
	}

	if len(fieldErrors) > 0 {
		return domain.UpdateTaskInput{}, fieldErrors
	}
	return input, nil
}

func metadataFromPayload(payload map[string]any) (domain.Metadata, bool) {
	metadata := make(domain.Metadata, len(payload))
	for key, value := range payload {
		switch value.(type) {
		case string, float64, bool, nil:
			metadata[key] = value
		default:
			return nil, false
		}
	}
	return metadata, true
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "metadata")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
