package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pedala/internal/redis"
	"pedala/internal/service"
)

// BikeHandler handles HTTP requests for bike discovery.
type BikeHandler struct {
	locator    *service.BikeLocator
	resolver   *service.LocationResolver
	candidates redis.CandidateStoreInterface
}

// NewBikeHandler creates a new BikeHandler.
func NewBikeHandler(locator *service.BikeLocator, resolver *service.LocationResolver, candidates redis.CandidateStoreInterface) *BikeHandler {
	return &BikeHandler{locator: locator, resolver: resolver, candidates: candidates}
}

// Nearby handles GET /v1/bikes/nearby
//
// The returned set becomes the user's rental candidate set: a following
// rent call resolves its bike id against these bikes.
func (h *BikeHandler) Nearby(c *gin.Context) {
	sess := sessionFrom(c)
	location := h.resolver.Resolve(c.Request.Context(), sess)

	count := 10
	if countStr := c.Query("count"); countStr != "" {
		if parsed, err := strconv.Atoi(countStr); err == nil {
			count = parsed
		}
	}

	bikes, err := h.locator.Nearby(c.Request.Context(), location.Latitude, location.Longitude, count)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.candidates != nil && sess.LoggedIn() {
		// Best effort; renting still fails cleanly on a cache miss.
		_ = h.candidates.Set(c.Request.Context(), sess.UserEmail, bikes)
	}

	c.JSON(http.StatusOK, gin.H{
		"center": location,
		"bikes":  bikes,
	})
}
