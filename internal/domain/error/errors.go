package error

import (
	"errors"
	"fmt"
)

// Machine-readable reasons surfaced to callers of the deposit verification
// endpoint. Every rejection also leaves a failed transactions row for audit.
const (
	ReasonVerificationFailed    = "flutterwave_verification_failed"
	ReasonPaymentNotSuccessful  = "payment_not_successful"
	ReasonTxRefMismatch         = "tx_ref_mismatch"
	ReasonCustomerEmailMismatch = "customer_email_mismatch"
)

// Error identifiers used in non-verification error payloads.
const (
	CodeUserNotFound        = "user_not_found"
	CodeUserLookupFailed    = "db_user_lookup_failed"
	CodeInsertTxFailed      = "insert_transaction_failed"
	CodeInternalError       = "internal_error"
	CodeInsufficientBalance = "insufficient_balance"
	CodeBelowMinimum        = "below_minimum_withdrawal"
	CodeCooldownActive      = "claim_cooldown_active"
	CodeInvalidRequest      = "invalid_request"
	CodeForbidden           = "forbidden"
	CodeWithdrawNotFound    = "withdraw_request_not_found"
	CodeRequestNotPending   = "request_not_pending"
)

// Base error types
var (
	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUserLookupFailed is returned when the user lookup fails for reasons
	// other than the user being absent
	ErrUserLookupFailed = errors.New("user lookup failed")

	// ErrInsufficientBalance is returned when a withdrawal exceeds the balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrBelowMinimumWithdrawal is returned when the amount is under the
	// minimum withdrawal threshold
	ErrBelowMinimumWithdrawal = errors.New("amount below minimum withdrawal")

	// ErrCooldownActive is returned when a claim arrives before the cooldown
	// has elapsed, or when another session claimed first
	ErrCooldownActive = errors.New("claim cooldown active")

	// ErrInvalidAmount is returned when an amount string cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when an amount would overflow int64 cents
	ErrAmountOverflow = errors.New("amount is too large")

	// ErrInvalidUserID is returned when a user id is not a valid UUID
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidTxRef is returned when the client reference is empty
	ErrInvalidTxRef = errors.New("tx_ref cannot be empty")

	// ErrTransactionNotFound is returned when no transaction matches a tx_ref
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrWithdrawRequestNotFound is returned when a withdraw request id is unknown
	ErrWithdrawRequestNotFound = errors.New("withdraw request not found")

	// ErrRequestNotPending is returned when an admin transition targets a
	// request already in a terminal state
	ErrRequestNotPending = errors.New("withdraw request is not pending")

	// ErrInvalidStatus is returned when a status value is not paid or rejected
	ErrInvalidStatus = errors.New("invalid withdraw request status")

	// ErrForbidden is returned when a non-admin calls an admin operation
	ErrForbidden = errors.New("admin privileges required")

	// ErrDuplicateUser is returned when creating a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDatabaseConnection is returned on datastore connectivity problems
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// VerificationError is a deposit verification rejection. It carries the
// machine-readable reason returned to the caller and recorded on the audit row.
type VerificationError struct {
	Reason string
	TxRef  string
	Detail string
}

// Error implements the error interface
func (e *VerificationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("verification rejected (%s) for reference %s", e.Reason, e.TxRef)
	}
	return fmt.Sprintf("verification rejected (%s) for reference %s: %s", e.Reason, e.TxRef, e.Detail)
}

// LogFields returns structured logging fields for the rejection
func (e *VerificationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "verification_rejected",
		"reason":     e.Reason,
		"tx_ref":     e.TxRef,
		"detail":     e.Detail,
	}
}

// NewVerificationError creates a verification rejection with a reason
func NewVerificationError(reason, txRef, detail string) *VerificationError {
	return &VerificationError{Reason: reason, TxRef: txRef, Detail: detail}
}

// InsufficientBalanceError carries balance context for a refused withdrawal
type InsufficientBalanceError struct {
	UserID  string
	Amount  string
	Balance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: requested %s, available %s",
		e.UserID, e.Amount, e.Balance)
}

// Is reports whether the target is ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns structured logging fields
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"balance":    e.Balance,
	}
}

// NewInsufficientBalanceError creates a detailed insufficient balance error
func NewInsufficientBalanceError(userID, amount, balance string) error {
	return &InsufficientBalanceError{UserID: userID, Amount: amount, Balance: balance}
}

// AsVerificationError extracts a VerificationError if err is one
func AsVerificationError(err error) (*VerificationError, bool) {
	var ve *VerificationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrWithdrawRequestNotFound)
}

// IsCooldownError checks if the error is a claim cooldown rejection
func IsCooldownError(err error) bool {
	return errors.Is(err, ErrCooldownActive)
}

// IsValidationError checks if the error is a client-side validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidTxRef) ||
		errors.Is(err, ErrBelowMinimumWithdrawal) ||
		errors.Is(err, ErrInvalidStatus)
}

// ErrorID returns the machine-readable identifier for a known error
func ErrorID(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrUserLookupFailed):
		return CodeUserLookupFailed
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrBelowMinimumWithdrawal):
		return CodeBelowMinimum
	case errors.Is(err, ErrCooldownActive):
		return CodeCooldownActive
	case errors.Is(err, ErrWithdrawRequestNotFound):
		return CodeWithdrawNotFound
	case errors.Is(err, ErrRequestNotPending):
		return CodeRequestNotPending
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case IsValidationError(err):
		return CodeInvalidRequest
	default:
		return CodeInternalError
	}
}
