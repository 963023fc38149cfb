package api

import (
	"net/http"
	"strconv"

	"github.com/avdeevra/equiprent/internal/domain"
	"github.com/avdeevra/equiprent/internal/service/equipment"
	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	service equipment.EquipmentUseCase
}

type createEquipmentRequest struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,gt=0"`
}

func NewEquipmentHandler(service equipment.EquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

// Register mounts the public read routes; RegisterAdmin mounts the
// mutating routes, which the router wraps with auth + admin middleware.
func (h *EquipmentHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

func (h *EquipmentHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *EquipmentHandler) list(c *gin.Context) {
	equipment, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func (h *EquipmentHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	equipment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func (h *EquipmentHandler) create(c *gin.Context) {
	var req createEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	created := &domain.Equipment{
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		PricePerHour: req.PricePerHour,
		Available:    true,
	}
	if err := h.service.Create(c.Request.Context(), created); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EquipmentHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var patch domain.EquipmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EquipmentHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "equipment deleted"})
}
