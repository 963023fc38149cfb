package api

import (
	"net/http"
	"time"

	"github.com/avdeevra/equiprent/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	EquipmentID int64     `json:"equipment_id"`
	FromTime    time.Time `json:"from_time"`
	ToTime      time.Time `json:"to_time"`
}

type bookingResponse struct {
	ID          int64   `json:"id"`
	Reference   string  `json:"reference"`
	UserID      int64   `json:"user_id"`
	EquipmentID int64   `json:"equipment_id"`
	FromTime    string  `json:"from_time"`
	ToTime      string  `json:"to_time"`
	TotalHours  float64 `json:"total_hours"`
	TotalPrice  float64 `json:"total_price"`
	CreatedAt   string  `json:"created_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/my", h.my)
	router.GET("/all", AdminOnly(), h.all)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		UserID:      callerID(c),
		EquipmentID: req.EquipmentID,
		FromTime:    req.FromTime,
		ToTime:      req.ToTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookingResponse{
		ID:          created.ID,
		Reference:   created.Reference,
		UserID:      created.UserID,
		EquipmentID: created.EquipmentID,
		FromTime:    created.FromTime.Format(time.RFC3339),
		ToTime:      created.ToTime.Format(time.RFC3339),
		TotalHours:  created.TotalHours,
		TotalPrice:  created.TotalPrice,
		CreatedAt:   created.CreatedAt.Format(time.RFC3339),
	})
}

func (h *BookingHandler) my(c *gin.Context) {
	bookings, err := h.service.MyBookings(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) all(c *gin.Context) {
	bookings, err := h.service.AllBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
