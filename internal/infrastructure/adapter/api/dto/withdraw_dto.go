package dto

import "time"

// WithdrawRequestBody is the body of POST /users/:userId/withdrawals
type WithdrawRequestBody struct {
	Amount        string `json:"amount" binding:"required"`
	AccountName   string `json:"account_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	BankName      string `json:"bank_name" binding:"required"`
}

// WithdrawResponse is the body of a successful withdrawal request
type WithdrawResponse struct {
	RequestID  string `json:"request_id"`
	Amount     string `json:"amount"`
	NewBalance string `json:"new_balance"`
	Status     string `json:"status"`
}

// WithdrawListingResponse is one row of GET /admin/withdrawals
type WithdrawListingResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Email         string    `json:"email"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	AccountName   string    `json:"account_name"`
	AccountNumber string    `json:"account_number"`
	BankName      string    `json:"bank_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReviewRequestBody is the body of PATCH /admin/withdrawals/:id
type ReviewRequestBody struct {
	Status string `json:"status" binding:"required"`
}

// ReviewResponse is the body of a settled review
type ReviewResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}
