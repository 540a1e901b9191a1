package cache

import (
	"context"
	"time"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
)

// LeaderboardCache holds recent top-balance snapshots. The board tolerates
// staleness up to the TTL, which replaces the original client's fixed
// re-polling interval.
type LeaderboardCache interface {
	// Get returns the cached entries for the given size, and whether a fresh
	// snapshot was present
	Get(ctx context.Context, limit int) ([]entity.LeaderboardEntry, bool, error)

	// Set stores a snapshot for the given size with a TTL
	Set(ctx context.Context, limit int, entries []entity.LeaderboardEntry, ttl time.Duration) error
}
