package handler

import (
	"net/http"
	"strconv"

	"github.com/madouyatt95/laserpark/internal/apierror"
	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/service"

	"github.com/gin-gonic/gin"
)

type ClosureHandler struct{ svc service.ClosureService }

func NewClosureHandler(svc service.ClosureService) *ClosureHandler {
	return &ClosureHandler{svc: svc}
}

// Create godoc
// @Summary Crée la clôture journalière (fige les agrégats du jour)
// @Tags closures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateClosureRequest true "Date et comptage optionnel"
// @Success 201 {object} dto.ClosureResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/closures [post]
func (h *ClosureHandler) Create(c *gin.Context) {
	var req dto.CreateClosureRequest
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

// Validate godoc
// @Summary Valide une clôture en attente
// @Tags closures
// @Accept json
// @Security BearerAuth
// @Param id path string true "ID de la clôture"
// @Param body body dto.MutateClosureRequest true "Jeton de version"
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/closures/{id}/validate [post]
func (h *ClosureHandler) Validate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.MutateClosureRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Validate(c.Request.Context(), actorFrom(c), id, req.RowVersion); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Lock godoc
// @Summary Verrouille définitivement une clôture validée
// @Tags closures
// @Accept json
// @Security BearerAuth
// @Param id path string true "ID de la clôture"
// @Param body body dto.MutateClosureRequest true "Jeton de version"
// @Success 204
// @Failure 403 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/closures/{id}/lock [post]
func (h *ClosureHandler) Lock(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.MutateClosureRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Lock(c.Request.Context(), actorFrom(c), id, req.RowVersion); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateNotes godoc
// @Summary Modifie les notes d'une clôture en attente
// @Tags closures
// @Accept json
// @Security BearerAuth
// @Param id path string true "ID de la clôture"
// @Param body body dto.UpdateClosureNotesRequest true "Notes et jeton de version"
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/closures/{id}/notes [put]
func (h *ClosureHandler) UpdateNotes(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateClosureNotesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdateNotes(c.Request.Context(), actorFrom(c), id, req.Notes, req.RowVersion); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CashCount godoc
// @Summary Rapproche un comptage d'espèces du montant attendu
// @Tags closures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CashCountRequest true "Détail du comptage par coupure"
// @Success 200 {object} dto.CashCountResponse
// @Router /v1/closures/cash-count [post]
func (h *ClosureHandler) CashCount(c *gin.Context) {
	var req dto.CashCountRequest
	if !bindAndValidate(c, &req) {
		return
	}
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	resp, err := h.svc.CashCount(c.Request.Context(), parkID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Diff godoc
// @Summary Compare le figé d'une clôture aux livres actuels
// @Tags closures
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la clôture"
// @Success 200 {object} dto.ClosureDiffResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/closures/{id}/diff [get]
func (h *ClosureHandler) Diff(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.RecomputeDiff(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByDate godoc
// @Summary Récupère la clôture d'une date
// @Tags closures
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date YYYY-MM-DD"
// @Success 200 {object} dto.ClosureResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/closures/date/{date} [get]
func (h *ClosureHandler) GetByDate(c *gin.Context) {
	date := c.Param("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Date requise"))
		return
	}
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByDate(c.Request.Context(), parkID, date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary Liste les clôtures du parc, les plus récentes d'abord
// @Tags closures
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Nombre maximum (défaut 30)"
// @Success 200 {array} dto.ClosureResponse
// @Router /v1/closures [get]
func (h *ClosureHandler) List(c *gin.Context) {
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	limit := 30
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	resp, err := h.svc.ListByPark(c.Request.Context(), parkID, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
