package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeClaimStatus(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should be ready when the user has never claimed", func(t *testing.T) {
		status := ComputeClaimStatus(nil, 6, now)

		assert.True(t, status.Ready)
		assert.Equal(t, now, status.NextClaim)
		assert.Equal(t, float64(100), status.Progress)
		assert.Equal(t, time.Duration(0), status.Remaining)
	})

	t.Run("should be waiting mid-cooldown", func(t *testing.T) {
		// cooldown 6 units = 1 hour; claimed 15 minutes ago
		lastClaim := now.Add(-15 * time.Minute)

		status := ComputeClaimStatus(&lastClaim, 6, now)

		assert.False(t, status.Ready)
		assert.Equal(t, lastClaim.Add(time.Hour), status.NextClaim)
		assert.Equal(t, 45*time.Minute, status.Remaining)
		assert.Equal(t, 0, status.Hours())
		assert.Equal(t, 45, status.Minutes())
		assert.Equal(t, 0, status.Seconds())
		assert.InDelta(t, 25.0, status.Progress, 0.001)
	})

	t.Run("should decompose long waits into hours minutes seconds", func(t *testing.T) {
		// cooldown 12 units = 2 hours; claimed 30 seconds ago
		lastClaim := now.Add(-30 * time.Second)

		status := ComputeClaimStatus(&lastClaim, 12, now)

		assert.False(t, status.Ready)
		assert.Equal(t, 1, status.Hours())
		assert.Equal(t, 59, status.Minutes())
		assert.Equal(t, 30, status.Seconds())
	})

	t.Run("should be ready exactly at the cooldown boundary", func(t *testing.T) {
		lastClaim := now.Add(-time.Hour)

		status := ComputeClaimStatus(&lastClaim, 6, now)

		assert.True(t, status.Ready)
		assert.Equal(t, float64(100), status.Progress)
	})

	t.Run("should be ready after the cooldown has passed", func(t *testing.T) {
		lastClaim := now.Add(-90 * time.Minute)

		status := ComputeClaimStatus(&lastClaim, 6, now)

		assert.True(t, status.Ready)
		assert.Equal(t, lastClaim.Add(time.Hour), status.NextClaim)
	})

	t.Run("should treat a non-positive cooldown as always ready", func(t *testing.T) {
		lastClaim := now.Add(-time.Second)

		status := ComputeClaimStatus(&lastClaim, 0, now)

		assert.True(t, status.Ready)
	})

	t.Run("should clamp progress when the clock moved backwards", func(t *testing.T) {
		// last claim in the future relative to now
		lastClaim := now.Add(5 * time.Minute)

		status := ComputeClaimStatus(&lastClaim, 6, now)

		assert.False(t, status.Ready)
		assert.GreaterOrEqual(t, status.Progress, float64(0))
		assert.LessOrEqual(t, status.Progress, float64(100))
	})

	t.Run("progress should be monotone over the cooldown window", func(t *testing.T) {
		lastClaim := now
		previous := -1.0
		for elapsed := time.Duration(0); elapsed <= time.Hour; elapsed += 5 * time.Minute {
			status := ComputeClaimStatus(&lastClaim, 6, now.Add(elapsed))
			assert.GreaterOrEqual(t, status.Progress, previous)
			previous = status.Progress
		}
		assert.Equal(t, float64(100), previous)
	})
}
