package client

import (
	"context"
	"net/http"

	"github.com/Nazary21/Teammatic/internal/adapter/http/dto"
	"github.com/Nazary21/Teammatic/internal/adapter/http/mapper"
	"github.com/Nazary21/Teammatic/internal/core/domain"
)

func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var items []dto.TaskItem
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &items, "failed to fetch tasks"); err != nil {
		return nil, err
	}

	tasks, err := mapper.ToDomainTasks(items)
	if err != nil {
		return nil, &Fault{Category: FaultTransport, Message: "failed to fetch tasks"}
	}
	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id string) (domain.Task, error) {
	var item dto.TaskItem
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+id, nil, &item, "failed to fetch task"); err != nil {
		return domain.Task{}, err
	}

	task, err := mapper.ToDomainTask(item)
	if err != nil {
		return domain.Task{}, &Fault{Category: FaultTransport, Message: "failed to fetch task"}
	}
	return task, nil
}

func (c *Client) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	// Unset enums default before validation so callers can leave them zero.
	if input.Status == "" {
		input.Status = domain.TaskStatusTodo
	}
	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedium
	}

	if fields := validateCreateTask(input); fields != nil {
		return domain.Task{}, validationFault("failed to create task", fields)
	}

	req := dto.CreateTaskRequest{
		Title:       input.Title,
		Description: input.Description,
		Status:      stringPtr(string(input.Status)),
		Priority:    stringPtr(string(input.Priority)),
		Metadata:    input.Metadata,
	}
	if input.DueDate != nil {
		value := mapper.FormatTime(*input.DueDate)
		req.DueDate = &value
	}

	var item dto.TaskItem
	if err := c.do(ctx, http.MethodPost, "/api/tasks", req, &item, "failed to create task"); err != nil {
		return domain.Task{}, err
	}

	task, err := mapper.ToDomainTask(item)
	if err != nil {
		return domain.Task{}, &Fault{Category: FaultTransport, Message: "failed to create task"}
	}
	return task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	if fields := validateUpdateTask(input); fields != nil {
		return domain.Task{}, validationFault("failed to update task", fields)
	}

	// The PATCH body carries only the supplied fields: the server reads field
	// presence from the raw JSON, so an omitted field is preserved while a
	// field sent as explicit null (XSet flag with a nil value) is cleared.
	body := map[string]any{}
	if input.Title != nil {
		body["title"] = *input.Title
	}
	if input.Status != nil {
		body["status"] = string(*input.Status)
	}
	if input.Priority != nil {
		body["priority"] = string(*input.Priority)
	}
	if input.DescriptionSet || input.Description != nil {
		body["description"] = input.Description
	}
	if input.DueDateSet || input.DueDate != nil {
		if input.DueDate != nil {
			body["due_date"] = mapper.FormatTime(*input.DueDate)
		} else {
			body["due_date"] = nil
		}
	}
	if input.MetadataSet || input.Metadata != nil {
		if input.Metadata != nil {
			body["metadata"] = input.Metadata
		} else {
			body["metadata"] = nil
		}
	}

	var item dto.TaskItem
	if err := c.do(ctx, http.MethodPatch, "/api/tasks/"+id, body, &item, "failed to update task"); err != nil {
		return domain.Task{}, err
	}

	task, err := mapper.ToDomainTask(item)
	if err != nil {
		return domain.Task{}, &Fault{Category: FaultTransport, Message: "failed to update task"}
	}
	return task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil, "failed to delete task")
}

func stringPtr(value string) *string {
	return &value
}
