package api

import (
	"errors"
	"net/http"

	"github.com/avdeevra/equiprent/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps domain error values to HTTP statuses. Everything
// unrecognized is reported as a 500 with only the message string exposed.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrEquipmentNotFound), errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrBookingConflict),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
