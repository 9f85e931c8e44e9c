package mapper

import (
	"fmt"

	"github.com/Nazary21/Teammatic/internal/adapter/http/dto"
	"github.com/Nazary21/Teammatic/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:        project.ID,
		Name:      project.Name,
		CreatedAt: FormatTime(project.CreatedAt),
		UpdatedAt: FormatTime(project.UpdatedAt),
	}

	if project.Description != nil {
		value := *project.Description
		item.Description = &value
	}

	if project.Collections != nil {
		item.Collections = ToCollectionItems(project.Collections)
	}

	return item
}

func ToCollectionItems(collections []domain.Collection) []dto.CollectionItem {
	items := make([]dto.CollectionItem, 0, len(collections))
	for _, collection := range collections {
		items = append(items, ToCollectionItem(collection))
	}
	return items
}

func ToCollectionItem(collection domain.Collection) dto.CollectionItem {
	item := dto.CollectionItem{
		ID:        collection.ID,
		Name:      collection.Name,
		ProjectID: collection.ProjectID,
		Position:  collection.Position,
		CreatedAt: FormatTime(collection.CreatedAt),
		UpdatedAt: FormatTime(collection.UpdatedAt),
	}

	if collection.Description != nil {
		value := *collection.Description
		item.Description = &value
	}

	return item
}

func ToDomainProjects(items []dto.ProjectItem) ([]domain.Project, error) {
	projects := make([]domain.Project, 0, len(items))
	for _, item := range items {
		project, err := ToDomainProject(item)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func ToDomainProject(item dto.ProjectItem) (domain.Project, error) {
	createdAt, err := ParseTime(item.CreatedAt)
	if err != nil {
		return domain.Project{}, fmt.Errorf("parse created_at: %w", err)
	}
	updatedAt, err := ParseTime(item.UpdatedAt)
	if err != nil {
		return domain.Project{}, fmt.Errorf("parse updated_at: %w", err)
	}

	project := domain.Project{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if item.Description != nil {
		value := *item.Description
		project.Description = &value
	}

	if item.Collections != nil {
		collections, err := ToDomainCollections(item.Collections)
		if err != nil {
			return domain.Project{}, err
		}
		project.Collections = collections
	}

	return project, nil
}

func ToDomainCollections(items []dto.CollectionItem) ([]domain.Collection, error) {
	collections := make([]domain.Collection, 0, len(items))
	for _, item := range items {
		collection, err := ToDomainCollection(item)
		if err != nil {
			return nil, err
		}
		collections = append(collections, collection)
	}
	return collections, nil
}

func ToDomainCollection(item dto.CollectionItem) (domain.Collection, error) {
	createdAt, err := ParseTime(item.CreatedAt)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("parse created_at: %w", err)
	}
	updatedAt, err := ParseTime(item.UpdatedAt)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("parse updated_at: %w", err)
	}

	collection := domain.Collection{
		ID:        item.ID,
		Name:      item.Name,
		ProjectID: item.ProjectID,
		Position:  item.Position,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if item.Description != nil {
		value := *item.Description
		collection.Description = &value
	}

	return collection, nil
}
