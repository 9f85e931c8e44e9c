package client

import (
	"context"
	"net/http"

	"github.com/Nazary21/Teammatic/internal/adapter/http/dto"
	"github.com/Nazary21/Teammatic/internal/adapter/http/mapper"
	"github.com/Nazary21/Teammatic/internal/core/domain"
)

func (c *Client) ListProjects(ctx context.Context, withCollections bool) ([]domain.Project, error) {
	path := "/api/projects"
	if withCollections {
		path += "?include=collections"
	}

	var items []dto.ProjectItem
	if err := c.do(ctx, http.MethodGet, path, nil, &items, "failed to fetch projects"); err != nil {
		return nil, err
	}

	projects, err := mapper.ToDomainProjects(items)
	if err != nil {
		return nil, &Fault{Category: FaultTransport, Message: "failed to fetch projects"}
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	if fields := validateCreateProject(input); fields != nil {
		return domain.Project{}, validationFault("failed to create project", fields)
	}

	req := dto.CreateProjectRequest{
		Name:        input.Name,
		Description: input.Description,
	}

	var item dto.ProjectItem
	if err := c.do(ctx, http.MethodPost, "/api/projects", req, &item, "failed to create project"); err != nil {
		return domain.Project{}, err
	}

	project, err := mapper.ToDomainProject(item)
	if err != nil {
		return domain.Project{}, &Fault{Category: FaultTransport, Message: "failed to create project"}
	}
	return project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil, "failed to delete project")
}

func (c *Client) ListProjectCollections(ctx context.Context, projectID string) ([]domain.Collection, error) {
	var items []dto.CollectionItem
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+projectID+"/collections", nil, &items, "failed to fetch collections"); err != nil {
		return nil, err
	}

	collections, err := mapper.ToDomainCollections(items)
	if err != nil {
		return nil, &Fault{Category: FaultTransport, Message: "failed to fetch collections"}
	}
	return collections, nil
}

func (c *Client) CreateCollection(ctx context.Context, input domain.CreateCollectionInput) (domain.Collection, error) {
	if fields := validateCreateCollection(input); fields != nil {
		return domain.Collection{}, validationFault("failed to create collection", fields)
	}

	req := dto.CreateCollectionRequest{
		Name:        input.Name,
		Description: input.Description,
		ProjectID:   input.ProjectID,
	}

	var item dto.CollectionItem
	if err := c.do(ctx, http.MethodPost, "/api/collections", req, &item, "failed to create collection"); err != nil {
		return domain.Collection{}, err
	}

	collection, err := mapper.ToDomainCollection(item)
	if err != nil {
		return domain.Collection{}, &Fault{Category: FaultTransport, Message: "failed to create collection"}
	}
	return collection, nil
}

func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/collections/"+id, nil, nil, "failed to delete collection")
}
