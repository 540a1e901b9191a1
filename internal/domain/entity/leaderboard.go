package entity

// LeaderboardEntry is one row of the top-balances query. Email is the only
// public identity in the original product, so it is what the board shows.
type LeaderboardEntry struct {
	Email        string `json:"email"`
	BalanceCents int64  `json:"balance_cents"`
}

// Balance returns the entry's balance as a two-decimal string
func (e LeaderboardEntry) Balance() string {
	return FormatCents(e.BalanceCents)
}
