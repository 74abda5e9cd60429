package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pedala/internal/domain"
	"pedala/internal/service"
)

// RideHandler handles HTTP requests for scheduled rides.
type RideHandler struct {
	scheduler *service.RideScheduler
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(scheduler *service.RideScheduler) *RideHandler {
	return &RideHandler{scheduler: scheduler}
}

// ScheduleRequest is the HTTP request body for scheduling a ride.
type ScheduleRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	DateTime  string  `json:"date_time"`
}

// RideResponse is the HTTP response for one scheduled ride.
type RideResponse struct {
	ID        string           `json:"id"`
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	DateTime  string           `json:"date_time"`
	Countdown domain.Countdown `json:"countdown"`
}

func (h *RideHandler) rideResponse(ride *domain.ScheduledRide) RideResponse {
	return RideResponse{
		ID:        ride.ID,
		Latitude:  ride.Latitude,
		Longitude: ride.Longitude,
		DateTime:  ride.DateTime.Format(time.RFC3339),
		Countdown: h.scheduler.Countdown(ride.DateTime),
	}
}

// Schedule handles POST /v1/rides
func (h *RideHandler) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date_time must be RFC 3339"})
		return
	}

	ride, err := h.scheduler.Schedule(c.Request.Context(), sessionFrom(c), req.Latitude, req.Longitude, dateTime)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.rideResponse(ride))
}

// List handles GET /v1/rides
func (h *RideHandler) List(c *gin.Context) {
	rides, err := h.scheduler.ListForUser(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RideResponse, 0, len(rides))
	for _, ride := range rides {
		response = append(response, h.rideResponse(ride))
	}

	c.JSON(http.StatusOK, response)
}

// Cancel handles DELETE /v1/rides/:id
func (h *RideHandler) Cancel(c *gin.Context) {
	if err := h.scheduler.Cancel(c.Request.Context(), sessionFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ride cancelled"})
}
