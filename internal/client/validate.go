package client

import (
	"strings"

	"github.com/Nazary21/Teammatic/internal/core/domain"
)

// Client-side schema gate: inputs are checked before any boundary call is
// attempted, with per-field detail. These checks mirror the server's and
// never mutate anything.

func validateCreateTask(input domain.CreateTaskInput) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "is required"
	}
	if input.Status != "" && !input.Status.Valid() {
		fields["status"] = "must be one of TODO, IN_PROGRESS, DONE"
	}
	if input.Priority != "" && !input.Priority.Valid() {
		fields["priority"] = "must be one of LOW, MEDIUM, HIGH"
	}
	if reason, ok := invalidMetadata(input.Metadata); ok {
		fields["metadata"] = reason
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func validateUpdateTask(input domain.UpdateTaskInput) map[string]string {
	fields := map[string]string{}

	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		fields["title"] = "must not be empty"
	}
	if input.Status != nil && !input.Status.Valid() {
		fields["status"] = "must be one of TODO, IN_PROGRESS, DONE"
	}
	if input.Priority != nil && !input.Priority.Valid() {
		fields["priority"] = "must be one of LOW, MEDIUM, HIGH"
	}
	if reason, ok := invalidMetadata(input.Metadata); ok {
		fields["metadata"] = reason
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func validateCreateProject(input domain.CreateProjectInput) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func validateCreateCollection(input domain.CreateCollectionInput) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "is required"
	}
	if strings.TrimSpace(input.ProjectID) == "" {
		fields["project_id"] = "is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func invalidMetadata(m domain.Metadata) (string, bool) {
	for _, value := range m {
		switch value.(type) {
		case string, float64, bool, nil:
		default:
			return "values must be strings, numbers, booleans or null", true
		}
	}
	return "", false
}
