package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	parkListCacheKey = "parks:active"
	parkListCacheTTL = 10 * time.Minute
)

type ParkHandler struct {
	svc service.ParkService
	rdb *redis.Client
}

func NewParkHandler(svc service.ParkService, rdb *redis.Client) *ParkHandler {
	return &ParkHandler{svc: svc, rdb: rdb}
}

// Create godoc
// @Summary Crée un parc
// @Tags parks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateParkRequest true "Parc"
// @Success 201 {object} dto.ParkResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/parks [post]
func (h *ParkHandler) Create(c *gin.Context) {
	var req dto.CreateParkRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.invalidateListCache()
	c.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary Modifie un parc
// @Tags parks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID du parc"
// @Param body body dto.UpdateParkRequest true "Champs à modifier"
// @Success 200 {object} dto.ParkResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/parks/{id} [put]
func (h *ParkHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateParkRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.invalidateListCache()
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Récupère un parc
// @Tags parks
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID du parc"
// @Success 200 {object} dto.ParkResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/parks/{id} [get]
func (h *ParkHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary Liste les parcs
// @Tags parks
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Inclure les parcs désactivés"
// @Success 200 {array} dto.ParkResponse
// @Router /v1/parks [get]
func (h *ParkHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	ctx := c.Request.Context()

	// Only the default active-only listing is cached.
	if !includeInactive && h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, parkListCacheKey).Bytes(); err == nil {
			var resp []dto.ParkResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.svc.List(ctx, includeInactive)
	if err != nil {
		writeError(c, err)
		return
	}

	// Populate cache, best effort.
	if !includeInactive && h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), parkListCacheKey, b, parkListCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ParkHandler) invalidateListCache() {
	if h.rdb != nil {
		_ = h.rdb.Del(context.Background(), parkListCacheKey).Err()
	}
}
