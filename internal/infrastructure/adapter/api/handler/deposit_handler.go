package handler

import (
	"net/http"

	domainerr "github.com/Akachukwuu/earnquiza/internal/domain/error"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	depositUseCase "github.com/Akachukwuu/earnquiza/internal/domain/usecase/deposit"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DepositHandler handles deposit verification HTTP requests
type DepositHandler struct {
	depositService *depositUseCase.Service
	logger         coreport.Logger
}

// NewDepositHandler creates a new deposit handler instance
func NewDepositHandler(depositService *depositUseCase.Service, logger coreport.Logger) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
		logger:         logger,
	}
}

// VerifyPayment handles the POST /verify-payment endpoint
func (h *DepositHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid verify-payment request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   domainerr.CodeInvalidRequest,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   domainerr.CodeInvalidRequest,
			Message: "Invalid user ID format",
		})
		return
	}

	result, err := h.depositService.VerifyDeposit(c.Request.Context(), depositUseCase.VerifyRequest{
		TxRef:         req.TxRef,
		TransactionID: req.TransactionID,
		UserID:        userID,
	})
	if err != nil {
		h.logger.Error("Deposit verification failed", map[string]any{
			"tx_ref": req.TxRef,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   domainerr.CodeInternalError,
			Message: "Internal server error",
		})
		return
	}

	c.JSON(result.StatusCode, dto.VerifyPaymentResponse{
		Verified:    result.Verified,
		Reason:      result.Reason,
		NewEarnRate: result.NewEarnRate,
		EmailCheck:  result.EmailCheck,
		Warning:     result.Warning,
		UpdateError: result.UpdateError,
		Error:       result.ErrorID,
		Detail:      result.Detail,
	})
}
