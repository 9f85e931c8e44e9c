package service

import (
	"context"

	"github.com/Nazary21/Teammatic/internal/core/domain"
	"github.com/Nazary21/Teammatic/internal/core/ports"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
}

func NewProjectService(projectRepository ports.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepository: projectRepository}
}

func (s *ProjectService) Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	return s.projectRepository.Create(ctx, input)
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (domain.Project, error) {
	return s.projectRepository.GetByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, withCollections bool) ([]domain.Project, error) {
	return s.projectRepository.List(ctx, withCollections)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.projectRepository.Delete(ctx, id)
}

var _ ports.ProjectService = (*ProjectService)(nil)
