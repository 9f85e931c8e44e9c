package ports

import (
	"context"

	"github.com/Nazary21/Teammatic/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	// List returns tasks ordered by updated_at descending.
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}
