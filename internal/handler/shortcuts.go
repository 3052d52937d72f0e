package handler

import (
	"net/http"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/service"

	"github.com/gin-gonic/gin"
)

type ShortcutHandler struct{ svc service.ShortcutService }

func NewShortcutHandler(svc service.ShortcutService) *ShortcutHandler {
	return &ShortcutHandler{svc: svc}
}

// Create godoc
// @Summary Crée un raccourci de caisse
// @Tags shortcuts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateShortcutRequest true "Raccourci"
// @Success 201 {object} dto.ShortcutResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/shortcuts [post]
func (h *ShortcutHandler) Create(c *gin.Context) {
	var req dto.CreateShortcutRequest
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
// @Summary Modifie un raccourci de caisse
// @Tags shortcuts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID du raccourci"
// @Param body body dto.UpdateShortcutRequest true "Champs à modifier"
// @Success 200 {object} dto.ShortcutResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/shortcuts/{id} [put]
func (h *ShortcutHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateShortcutRequest
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

// Delete godoc
// @Summary Supprime un raccourci de caisse
// @Tags shortcuts
// @Security BearerAuth
// @Param id path string true "ID du raccourci"
// @Success 204
// @Router /v1/shortcuts/{id} [delete]
func (h *ShortcutHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reorder godoc
// @Summary Réordonne les raccourcis du parc
// @Tags shortcuts
// @Accept json
// @Security BearerAuth
// @Param body body dto.ReorderShortcutsRequest true "IDs dans l'ordre souhaité"
// @Success 204
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/shortcuts/reorder [post]
func (h *ShortcutHandler) Reorder(c *gin.Context) {
	var req dto.ReorderShortcutsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), actorFrom(c), parkID, req.ShortcutIDs); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List godoc
// @Summary Liste les raccourcis du parc, dans l'ordre de la caisse
// @Tags shortcuts
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Inclure les raccourcis désactivés"
// @Success 200 {array} dto.ShortcutResponse
// @Router /v1/shortcuts [get]
func (h *ShortcutHandler) List(c *gin.Context) {
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
