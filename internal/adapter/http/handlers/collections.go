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

type CollectionHandler struct {
	collectionService ports.CollectionService
}

func NewCollectionHandler(collectionService ports.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateValidationError(
				http.StatusBadRequest, apierrors.MsgInvalidCollectionPayload, lang,
				validation.FieldErrorsFromBinding(err),
			),
		)
		return
	}

	input, fieldErrors := validation.BuildCreateCollectionInput(req)
	if len(fieldErrors) > 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateValidationError(http.StatusBadRequest, apierrors.MsgInvalidCollectionPayload, lang, fieldErrors),
		)
		return
	}

	collection, err := h.collectionService.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to create collection", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateCollection, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCollectionItem(collection))
}

func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	lang := middleware.GetLang(c)
	collectionID := c.Param("id")

	if err := h.collectionService.Delete(c.Request.Context(), collectionID); err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCollectionNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete collection", zap.String("collection_id", collectionID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteCollection, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteConfirmation{Message: "collection deleted"})
}
