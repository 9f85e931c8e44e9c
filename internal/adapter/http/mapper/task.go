package mapper

import (
	"fmt"
	"time"

	"github.com/Nazary21/Teammatic/internal/adapter/http/dto"
	"github.com/Nazary21/Teammatic/internal/core/domain"
)

// Wire format for every date-valued field. RFC3339Nano round-trips any valid
// timestamp exactly.
const timeLayout = time.RFC3339Nano

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		Metadata:  task.Metadata,
		CreatedAt: FormatTime(task.CreatedAt),
		UpdatedAt: FormatTime(task.UpdatedAt),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := FormatTime(*task.DueDate)
		item.DueDate = &value
	}

	return item
}

func ToDomainTasks(items []dto.TaskItem) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(items))
	for _, item := range items {
		task, err := ToDomainTask(item)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func ToDomainTask(item dto.TaskItem) (domain.Task, error) {
	createdAt, err := ParseTime(item.CreatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("parse created_at: %w", err)
	}
	updatedAt, err := ParseTime(item.UpdatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("parse updated_at: %w", err)
	}

	task := domain.Task{
		ID:        item.ID,
		Title:     item.Title,
		Status:    domain.TaskStatus(item.Status),
		Priority:  domain.TaskPriority(item.Priority),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Metadata:  item.Metadata,
	}

	if item.Description != nil {
		value := *item.Description
		task.Description = &value
	}

	if item.DueDate != nil {
		dueDate, err := ParseTime(*item.DueDate)
		if err != nil {
			return domain.Task{}, fmt.Errorf("parse due_date: %w", err)
		}
		task.DueDate = &dueDate
	}

	return task, nil
}

func FormatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func ParseTime(value string) (time.Time, error) {
	return time.Parse(timeLayout, value)
}
