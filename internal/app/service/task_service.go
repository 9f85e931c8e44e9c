package service

import (
	"context"

	"github.com/Nazary21/Teammatic/internal/core/domain"
	"github.com/Nazary21/Teammatic/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.Create(ctx, input)
}

func (s *TaskService) GetByID(ctx context.Context, id string) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.List(ctx)
}

func (s *TaskService) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.Update(ctx, id, input)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.taskRepository.Delete(ctx, id)
}

var _ ports.TaskService = (*TaskService)(nil)
