package dto

// VerifyPaymentRequest is the body of POST /verify-payment
type VerifyPaymentRequest struct {
	TxRef         string `json:"tx_ref" binding:"required"`
	TransactionID string `json:"transaction_id" binding:"required"`
	UserID        string `json:"user_id" binding:"required,uuid"`
}

// VerifyPaymentResponse reports the outcome of deposit verification.
// Verified rejections carry a reason; verified successes may carry a warning
// when the earn-rate update could not be applied.
type VerifyPaymentResponse struct {
	Verified    bool   `json:"verified"`
	Reason      string `json:"reason,omitempty"`
	NewEarnRate string `json:"newEarnRate,omitempty"`
	EmailCheck  string `json:"emailCheck,omitempty"`
	Warning     string `json:"warning,omitempty"`
	UpdateError string `json:"updateError,omitempty"`
	Error       string `json:"error,omitempty"`
	Detail      string `json:"detail,omitempty"`
}
