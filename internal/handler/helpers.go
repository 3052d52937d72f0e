package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/madouyatt95/laserpark/internal/apierror"
	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/middleware"
	"github.com/madouyatt95/laserpark/internal/model"
	"github.com/madouyatt95/laserpark/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalide : "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeError maps the domain error taxonomy onto HTTP statuses. Handlers
// never inspect error strings.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Ressource introuvable"))
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	case errors.Is(err, apperrors.ErrDuplicateClosure):
		c.JSON(http.StatusConflict, apierror.New("Une clôture existe déjà pour cette date"))
	case errors.Is(err, apperrors.ErrInvalidStateTransition):
		c.JSON(http.StatusConflict, apierror.New("Transition d'état non autorisée"))
	case errors.Is(err, apperrors.ErrStaleWrite):
		c.JSON(http.StatusConflict, apierror.New("La fiche a été modifiée par un autre utilisateur, rechargez-la"))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, apierror.New("Permissions insuffisantes"))
	default:
		_ = c.Error(err)
	}
}

// actorFrom converts JWT claims into the service-layer actor.
func actorFrom(c *gin.Context) service.Actor {
	claims := middleware.GetClaims(c)
	actor := service.Actor{
		FullName: claims.FullName,
		Role:     claims.Role,
	}
	if id, err := uuid.Parse(claims.UserID); err == nil {
		actor.ID = id
	}
	if claims.ParkID != "" {
		if id, err := uuid.Parse(claims.ParkID); err == nil {
			actor.ParkID = &id
		}
	}
	return actor
}

// resolveParkID determines which park the request operates on. Staff and
// managers are pinned to their own park; super_admin selects one with the
// park_id query parameter. Writes the error response itself on failure.
func resolveParkID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)

	if claims.Role == model.RoleSuperAdmin {
		raw := c.Query("park_id")
		if raw == "" {
			c.JSON(http.StatusBadRequest, apierror.New("park_id requis pour un super administrateur"))
			return uuid.Nil, false
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("park_id invalide"))
			return uuid.Nil, false
		}
		return id, true
	}

	id, err := uuid.Parse(claims.ParkID)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("Aucun parc associé à ce compte"))
		return uuid.Nil, false
	}
	return id, true
}

// pathUUID parses a :id path parameter, writing the 400 itself on failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return uuid.Nil, false
	}
	return id, true
}
