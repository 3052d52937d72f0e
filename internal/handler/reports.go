package handler

import (
	"net/http"
	"time"

	"github.com/madouyatt95/laserpark/internal/apierror"
	"github.com/madouyatt95/laserpark/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc service.ReportingService
	loc *time.Location
}

func NewReportHandler(svc service.ReportingService, loc *time.Location) *ReportHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ReportHandler{svc: svc, loc: loc}
}

// parseDate reads the optional date query parameter, defaulting to today in
// the park's timezone. Writes the 400 itself on a malformed value.
func (h *ReportHandler) parseDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().In(h.loc), true
	}
	date, err := time.ParseInLocation("2006-01-02", raw, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Date invalide, format attendu YYYY-MM-DD"))
		return time.Time{}, false
	}
	return date, true
}

// Dashboard godoc
// @Summary Statistiques agrégées du jour pour le tableau de bord
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date YYYY-MM-DD (défaut aujourd'hui)"
// @Success 200 {object} dto.DashboardStats
// @Router /v1/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	date, ok := h.parseDate(c)
	if !ok {
		return
	}
	resp, err := h.svc.DashboardStats(c.Request.Context(), parkID, date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevenueByPayment godoc
// @Summary Recettes du jour par moyen de paiement
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date YYYY-MM-DD (défaut aujourd'hui)"
// @Success 200 {object} dto.RevenueByPayment
// @Router /v1/reports/revenue-by-payment [get]
func (h *ReportHandler) RevenueByPayment(c *gin.Context) {
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	date, ok := h.parseDate(c)
	if !ok {
		return
	}
	resp, err := h.svc.RevenueByPayment(c.Request.Context(), parkID, date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevenueByCategory godoc
// @Summary Recettes du jour par catégorie, décroissantes
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date YYYY-MM-DD (défaut aujourd'hui)"
// @Success 200 {array} dto.CategoryRevenue
// @Router /v1/reports/revenue-by-category [get]
func (h *ReportHandler) RevenueByCategory(c *gin.Context) {
	parkID, ok := resolveParkID(c)
	if !ok {
		return
	}
	date, ok := h.parseDate(c)
	if !ok {
		return
	}
	resp, err := h.svc.RevenueByCategory(c.Request.Context(), parkID, date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
