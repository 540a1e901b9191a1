package dto

import "time"

// ClaimStatusResponse describes where the claim timer stands
type ClaimStatusResponse struct {
	Ready            bool      `json:"ready"`
	NextClaim        time.Time `json:"next_claim"`
	RemainingSeconds int64     `json:"remaining_seconds"`
	Hours            int       `json:"hours"`
	Minutes          int       `json:"minutes"`
	Seconds          int       `json:"seconds"`
	Progress         float64   `json:"progress"`
}

// ProfileResponse is the body of GET /users/:userId
type ProfileResponse struct {
	ID            string              `json:"id"`
	Email         string              `json:"email"`
	Balance       string              `json:"balance"`
	EarnRate      string              `json:"earn_rate"`
	ClaimCooldown int                 `json:"claim_cooldown"`
	LastClaim     *time.Time          `json:"last_claim,omitempty"`
	IsAdmin       bool                `json:"is_admin"`
	Claim         ClaimStatusResponse `json:"claim"`
}

// ClaimResponse is the body of a successful POST /users/:userId/claim
type ClaimResponse struct {
	ClaimedAmount string    `json:"claimed_amount"`
	NewBalance    string    `json:"new_balance"`
	LastClaim     time.Time `json:"last_claim"`
	NextClaim     time.Time `json:"next_claim"`
}

// LeaderboardEntryResponse is one row of GET /leaderboard
type LeaderboardEntryResponse struct {
	Rank    int    `json:"rank"`
	Email   string `json:"email"`
	Balance string `json:"balance"`
}
