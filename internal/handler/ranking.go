package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pedala/internal/service"
)

// RankingHandler handles HTTP requests for the leaderboard.
type RankingHandler struct {
	aggregator *service.RankingAggregator
}

// NewRankingHandler creates a new RankingHandler.
func NewRankingHandler(aggregator *service.RankingAggregator) *RankingHandler {
	return &RankingHandler{aggregator: aggregator}
}

// Get handles GET /v1/ranking?by=points|distance
func (h *RankingHandler) Get(c *gin.Context) {
	strategy := service.RankByPoints
	switch c.Query("by") {
	case "", string(service.RankByPoints):
	case string(service.RankByDistance):
		strategy = service.RankByDistance
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown ranking strategy"})
		return
	}

	entries, err := h.aggregator.BuildRanking(c.Request.Context(), strategy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"strategy": strategy,
		"entries":  entries,
	})
}
