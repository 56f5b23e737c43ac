package flight

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service *Service
	catalog *Catalog
}

func NewFlightHandler(s *Service, c *Catalog) *FlightHandler {
	return &FlightHandler{
		service: s,
		catalog: c,
	}
}

func (h *FlightHandler) RegisterRoutes(router gin.IRouter) {
	v1 := router.Group("/v1/flights")
	{
		v1.POST("/search", h.SearchFlightsHandler)
		v1.POST("/filter", h.FilterFlightsHandler)
		v1.POST("/book", h.BookNowHandler)
		v1.POST("/cache/invalidate", h.InvalidateCacheHandler)
	}

	catalog := router.Group("/api/flights")
	{
		catalog.GET("/flights", h.CatalogFlightsHandler)
		catalog.GET("/flights/:id", h.CatalogFlightHandler)
		catalog.GET("/search", h.CatalogSearchHandler)
	}
}

// SearchFlightsHandler godoc
// @Summary      Search flights
// @Description  Live flights for the criteria, or the fallback dataset when the live API fails
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body SearchCriteria true "Search criteria"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/search [post]
func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	var req SearchCriteria
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	response, err := h.service.SearchFlights(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// FilterFlightsHandler godoc
// @Summary      Filter, sort and price search results
// @Description  Splits results into outbound and return legs, applies the filter panel and sort key, and prices any selected legs
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body ResultsRequest true "Search criteria, filters, sort and selection"
// @Success      200 {object} ResultsResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /v1/flights/filter [post]
func (h *FlightHandler) FilterFlightsHandler(c *gin.Context) {
	req := ResultsRequest{FilterQuery: DefaultFilterQuery()}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	response, err := h.service.FilterFlights(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// BookNowHandler godoc
// @Summary      Hand the selected itinerary to the booking step
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body BookRequest true "Search criteria and selected flight codes"
// @Success      200 {object} BookingPayload
// @Failure      422 {object} map[string]string
// @Router       /v1/flights/book [post]
func (h *FlightHandler) BookNowHandler(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	payload, err := h.service.BookNow(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

func (h *FlightHandler) InvalidateCacheHandler(c *gin.Context) {
	var req SearchCriteria
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.InvalidateCache(c.Request.Context(), req); err != nil {
		sendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CatalogFlightsHandler godoc
// @Summary      Flight catalog for a route
// @Tags         catalog
// @Produce      json
// @Param        from      query string true  "Origin"
// @Param        to        query string true  "Destination"
// @Param        departure query string true  "Departure date"
// @Param        return    query string false "Return date"
// @Success      200 {array} FlightRecord
// @Failure      400 {object} map[string]string
// @Router       /api/flights/flights [get]
func (h *FlightHandler) CatalogFlightsHandler(c *gin.Context) {
	var q CatalogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	flights, err := h.catalog.Flights(q)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) CatalogFlightHandler(c *gin.Context) {
	f, err := h.catalog.Flight(c.Param("id"))
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, f)
}

func (h *FlightHandler) CatalogSearchHandler(c *gin.Context) {
	var q CatalogSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	flights, err := h.catalog.Search(q)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, flights)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": fmt.Sprintf("Invalid request format: %v", err),
		"code":  ErrorCodeValidation,
	})
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError

	if errors.As(toAppError(err), &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	// Default to 500 for unknown errors
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
