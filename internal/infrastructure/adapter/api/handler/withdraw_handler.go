package handler

import (
	"net/http"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	domainerr "github.com/Akachukwuu/earnquiza/internal/domain/error"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	userUseCase "github.com/Akachukwuu/earnquiza/internal/domain/usecase/user"
	withdrawUseCase "github.com/Akachukwuu/earnquiza/internal/domain/usecase/withdraw"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// adminIDHeader carries the UUID of the admin performing a review
const adminIDHeader = "X-Admin-ID"

// WithdrawHandler handles withdrawal request and admin review HTTP requests
type WithdrawHandler struct {
	withdrawService *withdrawUseCase.Service
	userService     *userUseCase.Service
	logger          coreport.Logger
}

// NewWithdrawHandler creates a new withdraw handler instance
func NewWithdrawHandler(
	withdrawService *withdrawUseCase.Service,
	userService *userUseCase.Service,
	logger coreport.Logger,
) *WithdrawHandler {
	return &WithdrawHandler{
		withdrawService: withdrawService,
		userService:     userService,
		logger:          logger,
	}
}

// Request handles the POST /users/:userId/withdrawals endpoint
func (h *WithdrawHandler) Request(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var body dto.WithdrawRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   domainerr.CodeInvalidRequest,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.withdrawService.Request(c.Request.Context(), userID, body.Amount, entity.PayoutDetails{
		AccountName:   body.AccountName,
		AccountNumber: body.AccountNumber,
		BankName:      body.BankName,
	})
	if err != nil {
		respondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.WithdrawResponse{
		RequestID:  result.RequestID.String(),
		Amount:     result.Amount,
		NewBalance: result.NewBalance,
		Status:     string(entity.WithdrawPending),
	})
}

// AdminList handles the GET /admin/withdrawals endpoint
func (h *WithdrawHandler) AdminList(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	listings, err := h.withdrawService.List(c.Request.Context())
	if err != nil {
		respondWithError(c, h.logger, err)
		return
	}

	resp := make([]dto.WithdrawListingResponse, 0, len(listings))
	for _, listing := range listings {
		resp = append(resp, dto.WithdrawListingResponse{
			ID:            listing.Request.ID.String(),
			UserID:        listing.Request.UserID.String(),
			Email:         listing.OwnerEmail,
			Amount:        listing.Request.Amount(),
			Status:        string(listing.Request.Status),
			AccountName:   listing.Payout.AccountName,
			AccountNumber: listing.Payout.AccountNumber,
			BankName:      listing.Payout.BankName,
			CreatedAt:     listing.Request.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// AdminReview handles the PATCH /admin/withdrawals/:id endpoint
func (h *WithdrawHandler) AdminReview(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   domainerr.CodeInvalidRequest,
			Message: "Invalid request ID format",
		})
		return
	}

	var body dto.ReviewRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   domainerr.CodeInvalidRequest,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	status, err := entity.ParseWithdrawStatus(body.Status)
	if err != nil {
		respondWithError(c, h.logger, err)
		return
	}

	request, err := h.withdrawService.Review(c.Request.Context(), requestID, status)
	if err != nil {
		respondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReviewResponse{
		ID:        request.ID.String(),
		Status:    string(request.Status),
		UpdatedAt: request.UpdatedAt,
	})
}

// requireAdmin authorizes the caller named in the X-Admin-ID header. It
// writes the error response itself and reports whether to continue.
func (h *WithdrawHandler) requireAdmin(c *gin.Context) bool {
	adminID, err := uuid.Parse(c.GetHeader(adminIDHeader))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   domainerr.CodeInvalidRequest,
			Message: "Missing or invalid " + adminIDHeader + " header",
		})
		return false
	}

	if _, err := h.userService.RequireAdmin(c.Request.Context(), adminID); err != nil {
		respondWithError(c, h.logger, err)
		return false
	}
	return true
}
