package booking

import (
	"errors"
	"fmt"
	"net/http"

	"tripar/internal/flight"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service *Service
}

func NewBookingHandler(s *Service) *BookingHandler {
	return &BookingHandler{service: s}
}

func (h *BookingHandler) RegisterRoutes(router gin.IRouter) {
	v1 := router.Group("/v1/bookings")
	{
		v1.POST("", h.ConfirmHandler)
		v1.POST("/summary", h.SummaryHandler)
	}
}

// ConfirmHandler godoc
// @Summary      Confirm a booking
// @Description  Validates passengers, contact and payment details, prices the itinerary with tax and issues a booking reference
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body Request true "Booking form"
// @Success      201 {object} Confirmation
// @Failure      400 {object} map[string]string
// @Failure      422 {object} map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) ConfirmHandler(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  flight.ErrorCodeValidation,
		})
		return
	}

	conf, err := h.service.Confirm(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, conf)
}

// SummaryHandler godoc
// @Summary      Price a handed-over itinerary
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body flight.BookingPayload true "Booking payload"
// @Success      200 {object} flight.BookingFare
// @Router       /v1/bookings/summary [post]
func (h *BookingHandler) SummaryHandler(c *gin.Context) {
	var payload flight.BookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  flight.ErrorCodeValidation,
		})
		return
	}

	c.JSON(http.StatusOK, Summary(payload))
}

func sendError(c *gin.Context, err error) {
	var validation *flight.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": validation.Message,
			"code":  flight.ErrorCodeValidation,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    flight.ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
