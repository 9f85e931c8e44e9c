package ports

import (
	"context"

	"github.com/Nazary21/Teammatic/internal/core/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	GetByID(ctx context.Context, id string) (domain.Project, error)
	// List returns projects ordered by created_at. When withCollections is
	// true each project carries its collections ordered by position.
	List(ctx context.Context, withCollections bool) ([]domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	GetByID(ctx context.Context, id string) (domain.Project, error)
	List(ctx context.Context, withCollections bool) ([]domain.Project, error)
	Delete(ctx context.Context, id string) error
}
