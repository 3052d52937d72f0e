package handler

import (
	"net/http"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/service"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct{ svc service.ExpenseService }

func NewExpenseHandler(svc service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

// Create godoc
// @Summary Enregistre une dépense (commentaire obligatoire)
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateExpenseRequest true "Dépense"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req dto.CreateExpenseRequest
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

// List godoc
// @Summary Liste les dépenses d'une journée
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date YYYY-MM-DD (défaut aujourd'hui)"
// @Success 200 {array} dto.ExpenseResponse
// @Router /v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), parkID, dto.ExpenseFilter{Date: c.Query("date")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
