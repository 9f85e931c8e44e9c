package validation

import (
	"strings"

	"github.com/Nazary21/Teammatic/internal/adapter/http/dto"
	"github.com/Nazary21/Teammatic/internal/core/domain"
)

func BuildCreateProjectInput(req dto.CreateProjectRequest) (domain.CreateProjectInput, FieldErrors) {
	fieldErrors := FieldErrors{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		fieldErrors["name"] = "is required"
	}

	if len(fieldErrors) > 0 {
		return domain.CreateProjectInput{}, fieldErrors
	}

	return domain.CreateProjectInput{
		Name:        name,
		Description: req.Description,
	}, nil
}

func BuildCreateCollectionInput(req dto.CreateCollectionRequest) (domain.CreateCollectionInput, FieldErrors) {
	fieldErrors := FieldErrors{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		fieldErrors["name"] = "is required"
	}

	projectID := strings.TrimSpace(req.ProjectID)
	if projectID == "" {
		fieldErrors["project_id"] = "is required"
	}

	if len(fieldErrors) > 0 {
		return domain.CreateCollectionInput{}, fieldErrors
	}

	return domain.CreateCollectionInput{
		Name:        name,
		Description: req.Description,
		ProjectID:   projectID,
	}, nil
}
