package vehicles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/richxcame/fleet-management/pkg/common"
)

// Handler handles the vehicle HTTP surface
type Handler struct {
	service *Service
}

// NewHandler creates a new vehicle handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the vehicle routes. The seed reset route is
// dev-only and registered only when enableReset is set.
func (h *Handler) RegisterRoutes(r *gin.Engine, enableReset bool) {
	r.GET("/vehicles", h.ListVehicles)
	r.GET("/vehicles/:id", h.GetVehicle)
	r.POST("/vehicles", h.CreateVehicle)
	r.PATCH("/vehicles/:id", h.UpdateVehicle)
	r.DELETE("/vehicles/:id", h.DeleteVehicle)

	if enableReset {
		r.POST("/__reset_from_seed", h.ResetFromSeed)
	}
}

// ListVehicles returns the full collection as a bare JSON array
func (h *Handler) ListVehicles(c *gin.Context) {
	fleet, err := h.service.List(c.Request.Context())
	if err != nil {
		respondRuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, fleet)
}

// GetVehicle returns a single vehicle by id
func (h *Handler) GetVehicle(c *gin.Context) {
	vehicle, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// CreateVehicle creates a new vehicle
func (h *Handler) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	vehicle, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondRuleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// UpdateVehicle applies a partial patch to a vehicle
func (h *Handler) UpdateVehicle(c *gin.Context) {
	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	vehicle, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondRuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle removes a vehicle unless its status blocks deletion
func (h *Handler) DeleteVehicle(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondRuleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResetFromSeed replaces the collection with the seed snapshot (dev only)
func (h *Handler) ResetFromSeed(c *gin.Context) {
	if err := h.service.ResetFromSeed(c.Request.Context()); err != nil {
		respondRuleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondRuleError(c *gin.Context, err error) {
	var rerr *RuleError
	if errors.As(err, &rerr) {
		common.ErrorResponse(c, rerr.HTTPStatus(), rerr.Message)
		return
	}
	common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}
