package handler

import (
	"net/http"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/service"

	"github.com/gin-gonic/gin"
)

type PlanningHandler struct{ svc service.PlanningService }

func NewPlanningHandler(svc service.PlanningService) *PlanningHandler {
	return &PlanningHandler{svc: svc}
}

// CreateMember godoc
// @Summary Ajoute un membre à l'équipe du parc
// @Tags planning
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateTeamMemberRequest true "Membre"
// @Success 201 {object} dto.TeamMemberResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/team [post]
func (h *PlanningHandler) CreateMember(c *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if !bindAndValidate(c, &req) {
		return
	}
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	resp, err := h.svc.CreateMember(c.Request.Context(), actorFrom(c), parkID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateMember godoc
// @Summary Modifie un membre de l'équipe
// @Tags planning
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID du membre"
// @Param body body dto.UpdateTeamMemberRequest true "Champs à modifier"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/team/{id} [put]
func (h *PlanningHandler) UpdateMember(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTeamMemberRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateMember(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ToggleMember godoc
// @Summary Active ou désactive un membre de l'équipe
// @Tags planning
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID du membre"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/team/{id}/toggle [post]
func (h *PlanningHandler) ToggleMember(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ToggleMember(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMembers godoc
// @Summary Liste l'équipe du parc
// @Tags planning
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Inclure les membres désactivés"
// @Success 200 {array} dto.TeamMemberResponse
// @Router /v1/team [get]
func (h *PlanningHandler) ListMembers(c *gin.Context) {
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	includeInactive := c.Query("include_inactive") == "true"
	resp, err := h.svc.ListMembers(c.Request.Context(), parkID, includeInactive)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateShift godoc
// @Summary Planifie un créneau de travail
// @Tags planning
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateShiftRequest true "Créneau"
// @Success 201 {object} dto.ShiftResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/shifts [post]
func (h *PlanningHandler) CreateShift(c *gin.Context) {
	var req dto.CreateShiftRequest
	if !bindAndValidate(c, &req) {
		return
	}
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	resp, err := h.svc.CreateShift(c.Request.Context(), actorFrom(c), parkID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateShift godoc
// @Summary Modifie un créneau
// @Tags planning
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID du créneau"
// @Param body body dto.UpdateShiftRequest true "Champs à modifier"
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/shifts/{id} [put]
func (h *PlanningHandler) UpdateShift(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateShiftRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateShift(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteShift godoc
// @Summary Supprime un créneau
// @Tags planning
// @Security BearerAuth
// @Param id path string true "ID du créneau"
// @Success 204
// @Router /v1/shifts/{id} [delete]
func (h *PlanningHandler) DeleteShift(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteShift(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListShifts godoc
// @Summary Liste les créneaux (jour, semaine ou membre)
// @Tags planning
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date YYYY-MM-DD (défaut aujourd'hui)"
// @Param week_start query string false "Début de semaine YYYY-MM-DD"
// @Param member_id query string false "ID d'un membre"
// @Success 200 {array} dto.ShiftResponse
// @Router /v1/shifts [get]
func (h *PlanningHandler) ListShifts(c *gin.Context) {
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	filter := dto.ShiftFilter{
		Date:      c.Query("date"),
		WeekStart: c.Query("week_start"),
		MemberID:  c.Query("member_id"),
	}
	resp, err := h.svc.ListShifts(c.Request.Context(), parkID, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
