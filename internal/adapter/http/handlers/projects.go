package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nazary21/Teammatic/internal/adapter/http/dto"
	"github.com/Nazary21/Teammatic/internal/adapter/http/mapper"
	"github.com/Nazary21/Teammatic/internal/adapter/http/middleware"
	"github.com/Nazary21/Teammatic/internal/adapter/http/validation"
	"github.com/Nazary21/Teammatic/internal/core/domain"
	"github.com/Nazary21/Teammatic/internal/core/ports"
	"github.com/Nazary21/Teammatic/pkg/apierrors"
)

type ProjectHandler struct {
	projectService    ports.ProjectService
	collectionService ports.CollectionService
}

func NewProjectHandler(projectService ports.ProjectService, collectionService ports.CollectionService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, collectionService: collectionService}
}

// ListProjects returns all projects. With ?include=collections each project
// carries its collections ordered by position.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	lang := middleware.GetLang(c)
	withCollections := c.Query("include") == "collections"

	projects, err := h.projectService.List(c.Request.Context(), withCollections)
	if err != nil {
		zap.L().Error("failed to list projects", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProjects, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateValidationError(
				http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang,
				validation.FieldErrorsFromBinding(err),
			),
		)
		return
	}

	input, fieldErrors := validation.BuildCreateProjectInput(req)
	if len(fieldErrors) > 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateValidationError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang, fieldErrors),
		)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create project", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateProject, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("id")

	if err := h.projectService.Delete(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete project", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteProject, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteConfirmation{Message: "project deleted"})
}

func (h *ProjectHandler) ListProjectCollections(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("id")

	collections, err := h.collectionService.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		zap.L().Error("failed to list collections", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListCollections, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCollectionItems(collections))
}
