package i

import (
	"time"
)

// Tokenizer defines methods for generating and decoding signed tokens.
// Maze tokens carry the maze ID and the configuration needed to carve it again.
type Tokenizer interface {
	// Generate creates a token with the given claims that expires after expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
