package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lendly/service-rental/internal/apperr"
)

// Success writes a 200 response with the payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Created writes a 201 response with the payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

// BadRequest writes a 400 response with the message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Error maps a typed application error onto its HTTP status. Unmapped
// errors become 500s with the detail kept out of the body.
func Error(c *gin.Context, err error) {
	var (
		notFound        *apperr.NotFoundError
		invalidRange    *apperr.InvalidRangeError
		validation      *apperr.ValidationError
		forbidden       *apperr.ForbiddenError
		conflict        *apperr.ConflictError
		notAvailable    *apperr.ItemNotAvailableError
		alreadyDecided  *apperr.AlreadyDecidedError
		unknownState    *apperr.UnknownStateError
		selfBooking     *apperr.SelfBookingError
		unauthenticated *apperr.UnauthenticatedError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &invalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &unknownState):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &alreadyDecided):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notAvailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &selfBooking):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &unauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
