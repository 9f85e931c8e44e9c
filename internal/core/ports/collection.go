package ports

import (
	"context"

	"github.com/Nazary21/Teammatic/internal/core/domain"
)

type CollectionRepository interface {
	// Create fails with domain.ErrProjectNotFound when the owning project
	// does not exist.
	Create(ctx context.Context, input domain.CreateCollectionInput) (domain.Collection, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Collection, error)
	Delete(ctx context.Context, id string) error
}

type CollectionService interface {
	Create(ctx context.Context, input domain.CreateCollectionInput) (domain.Collection, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Collection, error)
	Delete(ctx context.Context, id string) error
}
