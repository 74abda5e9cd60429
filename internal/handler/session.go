package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pedala/internal/domain"
)

// ContextUserKey is where the auth middleware stores the user's email.
const ContextUserKey = "userEmail"

// sessionFrom builds the request session from the auth middleware and the
// optional lat/lng query parameters.
func sessionFrom(c *gin.Context) domain.Session {
	sess := domain.Session{UserEmail: c.GetString(ContextUserKey)}

	latStr, lngStr := c.Query("latitude"), c.Query("longitude")
	if latStr == "" || lngStr == "" {
		return sess
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr == nil && lngErr == nil {
		sess.Location = &domain.Coordinates{Latitude: lat, Longitude: lng}
	}
	return sess
}
