package handler

import (
	"net/http"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct{ svc service.ActivityService }

func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// Create godoc
// @Summary Enregistre une vente
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateActivityRequest true "Vente"
// @Success 201 {object} dto.ActivityResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/activities [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	var req dto.CreateActivityRequest
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

// Cancel godoc
// @Summary Annule une vente (définitif, motif obligatoire)
// @Tags activities
// @Accept json
// @Security BearerAuth
// @Param id path string true "ID de la vente"
// @Param body body dto.CancelActivityRequest true "Motif d'annulation"
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/activities/{id}/cancel [post]
func (h *ActivityHandler) Cancel(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.CancelActivityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Cancel(c.Request.Context(), actorFrom(c), id, req.Reason); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List godoc
// @Summary Liste les ventes d'une journée
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date YYYY-MM-DD (défaut aujourd'hui)"
// @Param status query string false "active | cancelled"
// @Success 200 {array} dto.ActivityResponse
// @Router /v1/activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	filter := dto.ActivityFilter{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}
	resp, err := h.svc.List(c.Request.Context(), parkID, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
