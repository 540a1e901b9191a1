package handler

import (
	"net/http"
	"strconv"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	domainerr "github.com/Akachukwuu/earnquiza/internal/domain/error"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	claimUseCase "github.com/Akachukwuu/earnquiza/internal/domain/usecase/claim"
	userUseCase "github.com/Akachukwuu/earnquiza/internal/domain/usecase/user"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles profile, claim and leaderboard HTTP requests
type UserHandler struct {
	userService  *userUseCase.Service
	claimService *claimUseCase.Service
	logger       coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userService *userUseCase.Service,
	claimService *claimUseCase.Service,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userService:  userService,
		claimService: claimService,
		logger:       logger,
	}
}

// GetProfile handles the GET /users/:userId endpoint
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		ID:            profile.User.ID.String(),
		Email:         profile.User.Email,
		Balance:       profile.User.Balance(),
		EarnRate:      profile.User.EarnRate(),
		ClaimCooldown: profile.User.ClaimCooldown,
		LastClaim:     profile.User.LastClaim,
		IsAdmin:       profile.User.IsAdmin,
		Claim:         claimStatusToDTO(profile.ClaimStatus),
	})
}

// Claim handles the POST /users/:userId/claim endpoint
func (h *UserHandler) Claim(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	result, err := h.claimService.Claim(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClaimResponse{
		ClaimedAmount: result.ClaimedAmount,
		NewBalance:    result.NewBalance,
		LastClaim:     result.LastClaim,
		NextClaim:     result.NextClaim,
	})
}

// Leaderboard handles the GET /leaderboard endpoint
func (h *UserHandler) Leaderboard(c *gin.Context) {
	limit := userUseCase.DefaultLeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   domainerr.CodeInvalidRequest,
				Message: "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	entries, err := h.userService.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, h.logger, err)
		return
	}

	resp := make([]dto.LeaderboardEntryResponse, 0, len(entries))
	for i, entry := range entries {
		resp = append(resp, dto.LeaderboardEntryResponse{
			Rank:    i + 1,
			Email:   entry.Email,
			Balance: entry.Balance(),
		})
	}

	c.JSON(http.StatusOK, resp)
}

func claimStatusToDTO(status entity.ClaimStatus) dto.ClaimStatusResponse {
	return dto.ClaimStatusResponse{
		Ready:            status.Ready,
		NextClaim:        status.NextClaim,
		RemainingSeconds: int64(status.Remaining.Seconds()),
		Hours:            status.Hours(),
		Minutes:          status.Minutes(),
		Seconds:          status.Seconds(),
		Progress:         status.Progress,
	}
}
