package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lendly/service-rental/internal/application"
	"github.com/lendly/service-rental/internal/auth"
	bookingDomain "github.com/lendly/service-rental/internal/domain/booking"
	"github.com/lendly/service-rental/internal/middleware"
	"github.com/lendly/service-rental/internal/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.Auth(jwtManager))
	{
		bookings.POST("", h.Create)
		bookings.PATCH("/:bookingId", h.Decide)
		bookings.GET("/:bookingId", h.Get)
		bookings.GET("", h.ListForBooker)
		bookings.GET("/owner", h.ListForOwner)
	}
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Decide handles PATCH /bookings/:bookingId?approved=true|false.
func (h *BookingHandler) Decide(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.BadRequest(c, "approved must be true or false")
		return
	}

	result, err := h.service.Decide(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get handles GET /bookings/:bookingId.
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	result, err := h.service.Get(c.Request.Context(), userID, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListForBooker handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	category, err := bookingDomain.ParseCategory(c.DefaultQuery("state", "ALL"))
	if err != nil {
		response.Error(c, err)
		return
	}

	from, size := parseWindow(c)

	// The booker listing divides the offset down to a page only when it
	// is positive; the owner listing below takes it as a page untouched.
	// Clients depend on both behaviors.
	page := from
	if from > 0 {
		page = from / size
	}

	result, err := h.service.ListForBooker(c.Request.Context(), userID, category, page, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListForOwner handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	category, err := bookingDomain.ParseCategory(c.DefaultQuery("state", "ALL"))
	if err != nil {
		response.Error(c, err)
		return
	}

	from, size := parseWindow(c)

	result, err := h.service.ListForOwner(c.Request.Context(), userID, category, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
