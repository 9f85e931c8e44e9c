package store

import (
	"strings"

	"github.com/Nazary21/Teammatic/internal/core/domain"
)

// TaskFilter selects a subsequence of tasks. Zero values mean "match all".
type TaskFilter struct {
	Status   domain.TaskStatus
	Priority domain.TaskPriority
	Query    string
}

// FilterTasks derives a read-only projection of tasks matching the filter.
// The free-text query matches title or description, case-insensitively. The
// result preserves the input order and shares no storage with it.
func FilterTasks(tasks []domain.Task, filter TaskFilter) []domain.Task {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && task.Priority != filter.Priority {
			continue
		}
		if query != "" && !matchesQuery(task, query) {
			continue
		}
		out = append(out, task)
	}
	return out
}

func matchesQuery(task domain.Task, query string) bool {
	if strings.Contains(strings.ToLower(task.Title), query) {
		return true
	}
	return task.Description != nil && strings.Contains(strings.ToLower(*task.Description), query)
}
