package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pedala/internal/repository"
	"pedala/internal/service"
)

// ProfileHandler handles HTTP requests for the authenticated user's profile.
type ProfileHandler struct {
	authService *service.AuthService
	userRepo    repository.UserRepository
	loyalty     *service.LoyaltyLedger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(authService *service.AuthService, userRepo repository.UserRepository, loyalty *service.LoyaltyLedger) *ProfileHandler {
	return &ProfileHandler{authService: authService, userRepo: userRepo, loyalty: loyalty}
}

// ProfileResponse extends the user data with derived loyalty standing.
type ProfileResponse struct {
	UserResponse
	Tier               string  `json:"tier"`
	DiscountPercentage float64 `json:"discount_percentage"`
}

// Get handles GET /v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	sess := sessionFrom(c)

	user, err := h.userRepo.GetByEmail(c.Request.Context(), sess.UserEmail)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		UserResponse:       userResponse(user),
		Tier:               string(h.loyalty.TierFor(user.Points)),
		DiscountPercentage: h.loyalty.DiscountFor(user.Points) * 100,
	})
}

// UpdateRequest is the HTTP request body for a profile update.
type UpdateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Update handles PUT /v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), sessionFrom(c), service.UpdateProfileRequest{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}
