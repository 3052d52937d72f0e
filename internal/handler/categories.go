package handler

import (
	"net/http"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct{ svc service.CategoryService }

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Create godoc
// @Summary Crée une catégorie
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateCategoryRequest true "Catégorie"
// @Success 201 {object} dto.CategoryResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), actorFrom(c), parkID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary Modifie une catégorie
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la catégorie"
// @Param body body dto.UpdateCategoryRequest true "Champs à modifier"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deactivate godoc
// @Summary Désactive une catégorie
// @Tags categories
// @Security BearerAuth
// @Param id path string true "ID de la catégorie"
// @Success 204
// @Router /v1/categories/{id} [delete]
func (h *CategoryHandler) Deactivate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List godoc
// @Summary Liste les catégories du parc
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Inclure les catégories désactivées"
// @Success 200 {array} dto.CategoryResponse
// @Router /v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	includeInactive := c.Query("include_inactive") == "true"
	resp, err := h.svc.ListByPark(c.Request.Context(), parkID, includeInactive)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
