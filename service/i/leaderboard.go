package i

import "context"

// Leaderboard ranks members by score, highest first.
type Leaderboard interface {
	// Record sets the score of a member.
	Record(ctx context.Context, member string, score float64) error

	// Top returns up to n members with the highest scores.
	Top(ctx context.Context, n int64) ([]string, error)

	// Remove drops a member.
	Remove(ctx context.Context, member string) error
}
