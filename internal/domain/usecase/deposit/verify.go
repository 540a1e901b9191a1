package deposit

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	"github.com/Akachukwuu/earnquiza/internal/domain/port/gateway"
	"github.com/google/uuid"
)

// sandboxEmailPrefix matches the synthetic prefix the gateway's sandbox
// prepends to customer emails, e.g. "ravesb_1699_jane@x.com".
var sandboxEmailPrefix = regexp.MustCompile(`^ravesb_[^_]+_`)

// VerifyDeposit runs the full verification workflow for one payment attempt.
// Every rejection is audited as a failed transactions row; the earn-rate
// boost is applied at most once per unique tx_ref.
func (s *Service) VerifyDeposit(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	if req.TxRef == "" {
		return nil, errs.ErrInvalidTxRef
	}
	if req.UserID == uuid.Nil {
		return nil, errs.ErrInvalidUserID
	}

	// The gateway is the source of truth for amount, currency and status.
	result, err := s.verifier.VerifyTransaction(ctx, req.TransactionID)
	if err != nil {
		s.logger.Error("Gateway verification call failed", map[string]any{
			"tx_ref":         req.TxRef,
			"transaction_id": req.TransactionID,
			"error":          err.Error(),
		})
		s.auditFailure(ctx, req, nil, err.Error())
		return s.reject(req, errs.ReasonVerificationFailed), nil
	}

	if !result.Success || result.Data == nil {
		s.auditFailure(ctx, req, result.Data, result.Raw)
		return s.reject(req, errs.ReasonVerificationFailed), nil
	}

	data := result.Data

	if data.Status != "successful" {
		s.auditFailure(ctx, req, data, result.Raw)
		return s.reject(req, errs.ReasonPaymentNotSuccessful), nil
	}

	// Defends against reference substitution: verifying transaction id X
	// while claiming reference Y.
	if data.TxRef != req.TxRef {
		s.auditFailure(ctx, req, data, result.Raw)
		return s.reject(req, errs.ReasonTxRefMismatch), nil
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return &VerifyResponse{
				Verified:   false,
				ErrorID:    errs.CodeUserNotFound,
				StatusCode: http.StatusNotFound,
			}, nil
		}
		s.logger.Error("User lookup failed during verification", map[string]any{
			"user_id": req.UserID.String(),
			"tx_ref":  req.TxRef,
			"error":   err.Error(),
		})
		return &VerifyResponse{
			Verified:   false,
			ErrorID:    errs.CodeUserLookupFailed,
			Detail:     err.Error(),
			StatusCode: http.StatusInternalServerError,
		}, nil
	}

	emailCheck := EmailCheckPassed
	if s.testMode {
		emailCheck = EmailCheckSkipped
	} else if normalizeCustomerEmail(data.CustomerEmail) != user.Email {
		s.logger.Warn("Customer email mismatch", map[string]any{
			"tx_ref":         req.TxRef,
			"gateway_email":  data.CustomerEmail,
			"expected_email": user.Email,
		})
		s.auditFailure(ctx, req, data, result.Raw)
		return s.reject(req, errs.ReasonCustomerEmailMismatch), nil
	}

	applied, err := s.recordSuccess(ctx, req, data, result.Raw)
	if err != nil {
		return &VerifyResponse{
			Verified:   false,
			ErrorID:    errs.CodeInsertTxFailed,
			Detail:     err.Error(),
			StatusCode: http.StatusInternalServerError,
		}, nil
	}

	if !applied {
		// Replay of an already-successful reference: report success with the
		// current rate, never compound the multiplier.
		s.logger.Info("Replayed verification of successful reference", map[string]any{
			"tx_ref":  req.TxRef,
			"user_id": req.UserID.String(),
		})
		return &VerifyResponse{
			Verified:    true,
			NewEarnRate: user.EarnRate(),
			EmailCheck:  emailCheck,
			StatusCode:  http.StatusOK,
		}, nil
	}

	newRate := user.BoostEarnRate(EarnRateMultiplier, s.timeProvider)
	if err := s.userRepo.UpdateEarnRate(ctx, req.UserID, newRate); err != nil {
		// The payment is recorded; never silently lose its effect.
		s.logger.Error("Earn rate update failed after recording transaction", map[string]any{
			"tx_ref":  req.TxRef,
			"user_id": req.UserID.String(),
			"error":   err.Error(),
		})
		return &VerifyResponse{
			Verified:    true,
			Warning:     "transaction_recorded_but_failed_update_user",
			UpdateError: err.Error(),
			EmailCheck:  emailCheck,
			StatusCode:  http.StatusOK,
		}, nil
	}

	s.logger.Info("Deposit verified and earn rate boosted", map[string]any{
		"tx_ref":        req.TxRef,
		"user_id":       req.UserID.String(),
		"amount":        entity.FormatCents(data.AmountCents),
		"currency":      data.Currency,
		"new_earn_rate": entity.FormatCents(newRate),
	})

	return &VerifyResponse{
		Verified:    true,
		NewEarnRate: entity.FormatCents(newRate),
		EmailCheck:  emailCheck,
		StatusCode:  http.StatusOK,
	}, nil
}

// recordSuccess upserts the success audit row inside one serializable unit of
// work, checking for a prior success first. Returns false when the reference
// was already successful, which makes replays advance the earn rate zero
// times: only the attempt that first records the row applies the boost.
func (s *Service) recordSuccess(ctx context.Context, req VerifyRequest, data *gateway.ChargeData, raw string) (bool, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return false, err
	}

	txRepo := s.uow.GetTransactionRepository(txCtx)

	existing, err := txRepo.GetByTxRef(txCtx, req.TxRef)
	if err != nil && !errors.Is(err, errs.ErrTransactionNotFound) {
		_ = s.uow.Rollback(txCtx)
		return false, err
	}
	if existing != nil && existing.Succeeded() {
		_ = s.uow.Rollback(txCtx)
		return false, nil
	}

	txn, err := entity.NewTransaction(
		req.TxRef,
		req.TransactionID,
		req.UserID,
		data.AmountCents,
		data.Currency,
		entity.TxStatusSuccess,
		raw,
		s.timeProvider,
	)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return false, err
	}

	if err := txRepo.Upsert(txCtx, txn); err != nil {
		_ = s.uow.Rollback(txCtx)
		return false, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return false, err
	}
	return true, nil
}

// auditFailure records a failed transactions row for a rejected attempt.
// Audit write errors are logged and swallowed: the caller still gets the
// rejection they earned.
func (s *Service) auditFailure(ctx context.Context, req VerifyRequest, data *gateway.ChargeData, raw string) {
	amountCents := int64(0)
	currency := entity.DefaultCurrency
	if data != nil {
		amountCents = data.AmountCents
		if data.Currency != "" {
			currency = data.Currency
		}
	}

	txn, err := entity.NewTransaction(
		req.TxRef,
		req.TransactionID,
		req.UserID,
		amountCents,
		currency,
		entity.TxStatusFailed,
		raw,
		s.timeProvider,
	)
	if err != nil {
		s.logger.Error("Failed to build audit transaction", map[string]any{
			"tx_ref": req.TxRef,
			"error":  err.Error(),
		})
		return
	}

	if err := s.transactionRepo.Upsert(ctx, txn); err != nil {
		s.logger.Error("Failed to persist failed transaction audit row", map[string]any{
			"tx_ref": req.TxRef,
			"error":  err.Error(),
		})
	}
}

func (s *Service) reject(req VerifyRequest, reason string) *VerifyResponse {
	s.logger.Warn("Deposit verification rejected", map[string]any{
		"tx_ref":         req.TxRef,
		"transaction_id": req.TransactionID,
		"user_id":        req.UserID.String(),
		"reason":         reason,
	})
	return &VerifyResponse{
		Verified:   false,
		Reason:     reason,
		StatusCode: http.StatusBadRequest,
	}
}

// normalizeCustomerEmail lowercases a gateway customer email and strips the
// sandbox prefix so it can be compared with the stored account email.
func normalizeCustomerEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	return sandboxEmailPrefix.ReplaceAllString(email, "")
}
