package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pedala/internal/domain"
	"pedala/internal/service"
)

// RentalHandler handles HTTP requests for the rental lifecycle.
type RentalHandler struct {
	rentalService *service.RentalService
}

// NewRentalHandler creates a new RentalHandler.
func NewRentalHandler(rentalService *service.RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService}
}

// RentRequest is the HTTP request body for renting a bike.
type RentRequest struct {
	BikeID    int      `json:"bike_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Rent handles POST /v1/rentals
func (h *RentalHandler) Rent(c *gin.Context) {
	var req RentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sess := sessionFrom(c)
	if req.Latitude != nil && req.Longitude != nil {
		sess.Location = &domain.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	rental, err := h.rentalService.Rent(c.Request.Context(), sess, req.BikeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rental)
}

// Return handles POST /v1/rentals/:index/return
func (h *RentalHandler) Return(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid rental index"})
		return
	}

	result, err := h.rentalService.Return(c.Request.Context(), sessionFrom(c), index)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rental":           result.Rental,
		"duration_minutes": result.DurationMinutes,
		"earned_points":    result.EarnedPoints,
		"cost":             result.Cost,
		"total_points":     result.TotalPoints,
		"tier":             result.Tier,
	})
}

// History handles GET /v1/rentals
func (h *RentalHandler) History(c *gin.Context) {
	rentals, err := h.rentalService.History(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rentals)
}
