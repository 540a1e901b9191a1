package entity

import "time"

// CooldownUnit is the duration of one claim_cooldown unit. A user with
// claim_cooldown=6 waits an hour between claims.
const CooldownUnit = 10 * time.Minute

// ClaimStatus is the pure timer computation for one user at one instant.
// It has no I/O; handlers recompute it on every read.
type ClaimStatus struct {
	Ready     bool
	NextClaim time.Time
	Remaining time.Duration
	// Progress is the elapsed fraction of the cooldown as a percentage,
	// clamped to [0,100]. 100 when claiming is ready.
	Progress float64
}

// Hours returns the whole hours of the remaining wait
func (s ClaimStatus) Hours() int {
	return int(s.Remaining / time.Hour)
}

// Minutes returns the minutes component of the remaining wait
func (s ClaimStatus) Minutes() int {
	return int(s.Remaining % time.Hour / time.Minute)
}

// Seconds returns the seconds component of the remaining wait
func (s ClaimStatus) Seconds() int {
	return int(s.Remaining % time.Minute / time.Second)
}

// ComputeClaimStatus evaluates the claim timer. A user who has never claimed
// is immediately ready.
func ComputeClaimStatus(lastClaim *time.Time, cooldownUnits int, now time.Time) ClaimStatus {
	if lastClaim == nil {
		return ClaimStatus{Ready: true, NextClaim: now, Progress: 100}
	}

	cooldown := time.Duration(cooldownUnits) * CooldownUnit
	next := lastClaim.Add(cooldown)

	if cooldown <= 0 || !now.Before(next) {
		return ClaimStatus{Ready: true, NextClaim: next, Progress: 100}
	}

	remaining := next.Sub(now)
	elapsed := cooldown - remaining
	progress := float64(elapsed) / float64(cooldown) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return ClaimStatus{
		Ready:     false,
		NextClaim: next,
		Remaining: remaining,
		Progress:  progress,
	}
}
