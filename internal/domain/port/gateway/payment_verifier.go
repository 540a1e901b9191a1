package gateway

import "context"

// ChargeData is the subset of the gateway's verification payload the deposit
// workflow consumes. The gateway, not the client, is the source of truth for
// every field here.
type ChargeData struct {
	// Status is the gateway's own payment status; "successful" means money moved
	Status string
	// TxRef is the reference the gateway stored at checkout time
	TxRef string
	// AmountCents is the charged amount in minor units
	AmountCents int64
	// Currency is the charge currency, e.g. "NGN"
	Currency string
	// CustomerEmail is the payer identity as the gateway saw it
	CustomerEmail string
}

// VerifyResult is the outcome of one verification call that reached the
// gateway and got a response.
type VerifyResult struct {
	// Success is the outer call status: true only when the gateway reported
	// overall success AND returned a data payload
	Success bool
	// Data is nil when Success is false and the payload carried no data
	Data *ChargeData
	// Raw is the unparsed response body, persisted as audit metadata
	Raw string
}

// PaymentVerifier verifies a transaction id against the payment gateway.
// Implementations return an error only when the gateway could not be reached
// or answered with garbage; an unsuccessful verification is a valid result.
type PaymentVerifier interface {
	VerifyTransaction(ctx context.Context, transactionID string) (*VerifyResult, error)
}
