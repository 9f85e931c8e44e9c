package service

import (
	"context"

	"github.com/Nazary21/Teammatic/internal/core/domain"
	"github.com/Nazary21/Teammatic/internal/core/ports"
)

type CollectionService struct {
	collectionRepository ports.CollectionRepository
}

func NewCollectionService(collectionRepository ports.CollectionRepository) *CollectionService {
	return &CollectionService{collectionRepository: collectionRepository}
}

func (s *CollectionService) Create(ctx context.Context, input domain.CreateCollectionInput) (domain.Collection, error) {
	return s.collectionRepository.Create(ctx, input)
}

func (s *CollectionService) ListByProject(ctx context.Context, projectID string) ([]domain.Collection, error) {
	return s.collectionRepository.ListByProject(ctx, projectID)
}

func (s *CollectionService) Delete(ctx context.Context, id string) error {
	return s.collectionRepository.Delete(ctx, id)
}

var _ ports.CollectionService = (*CollectionService)(nil)
