package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/madouyatt95/laserpark/internal/apierror"
	"github.com/madouyatt95/laserpark/internal/service"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc service.AuditService
	loc *time.Location
}

func NewAuditHandler(svc service.AuditService, loc *time.Location) *AuditHandler {
	if loc == nil {
		loc = time.Local
	}
	return &AuditHandler{svc: svc, loc: loc}
}

// Recent godoc
// @Summary Dernières entrées du journal d'audit
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Nombre maximum (défaut 50)"
// @Param date query string false "Filtrer sur une date YYYY-MM-DD"
// @Success 200 {array} dto.AuditLogResponse
// @Router /v1/audit [get]
func (h *AuditHandler) Recent(c *gin.Context) {
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}

	if raw := c.Query("date"); raw != "" {
		date, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Date invalide, format attendu YYYY-MM-DD"))
			return
		}
		from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, h.loc)
		to := from.Add(24*time.Hour - time.Nanosecond)
		resp, err := h.svc.ByDate(c.Request.Context(), parkID, from, to)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	resp, err := h.svc.Recent(c.Request.Context(), parkID, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
