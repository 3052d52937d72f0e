package handler

import (
	"net/http"
	"strconv"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/service"

	"github.com/gin-gonic/gin"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler { return &StockHandler{svc: svc} }

// CreateItem godoc
// @Summary Crée un article de stock
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateStockItemRequest true "Article"
// @Success 201 {object} dto.StockItemResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/stock [post]
func (h *StockHandler) CreateItem(c *gin.Context) {
	var req dto.CreateStockItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	resp, err := h.svc.CreateItem(c.Request.Context(), actorFrom(c), parkID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateItem godoc
// @Summary Modifie un article de stock
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de l'article"
// @Param body body dto.UpdateStockItemRequest true "Champs à modifier"
// @Success 200 {object} dto.StockItemResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/stock/{id} [put]
func (h *StockHandler) UpdateItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStockItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateItem(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeactivateItem godoc
// @Summary Désactive un article de stock
// @Tags stock
// @Security BearerAuth
// @Param id path string true "ID de l'article"
// @Success 204
// @Router /v1/stock/{id} [delete]
func (h *StockHandler) DeactivateItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeactivateItem(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List godoc
// @Summary Liste les articles de stock du parc
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param low query bool false "Seulement les articles sous le seuil"
// @Success 200 {array} dto.StockItemResponse
// @Router /v1/stock [get]
func (h *StockHandler) List(c *gin.Context) {
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	var (
		resp []dto.StockItemResponse
		err  error
	)
	if c.Query("low") == "true" {
		resp, err = h.svc.ListLowStock(c.Request.Context(), parkID)
	} else {
		resp, err = h.svc.ListByPark(c.Request.Context(), parkID)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Entry godoc
// @Summary Enregistre une entrée de stock (livraison)
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de l'article"
// @Param body body dto.StockEntryRequest true "Quantité et motif"
// @Success 200 {object} dto.StockItemResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/stock/{id}/entry [post]
func (h *StockHandler) Entry(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.StockEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Entry(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Adjust godoc
// @Summary Ajuste la quantité après inventaire physique
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de l'article"
// @Param body body dto.StockAdjustRequest true "Nouvelle quantité et motif"
// @Success 200 {object} dto.StockItemResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/stock/{id}/adjust [post]
func (h *StockHandler) Adjust(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.StockAdjustRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Adjust(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Movements godoc
// @Summary Historique des mouvements d'un article
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de l'article"
// @Param limit query int false "Nombre maximum de mouvements (défaut 50)"
// @Success 200 {array} dto.StockMovementResponse
// @Router /v1/stock/{id}/movements [get]
func (h *StockHandler) Movements(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	resp, err := h.svc.Movements(c.Request.Context(), id, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
