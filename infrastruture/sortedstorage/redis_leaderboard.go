package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const defaultCapacity = 100

var _ i.Leaderboard = &RedisLeaderboard{}

// RedisLeaderboard keeps a capped sorted set in Redis with TTL support.
type RedisLeaderboard struct {
	client   *redis.Client
	locker   *redsync.Redsync
	key      string
	capacity int64
	ttl      time.Duration
}

// NewRedisLeaderboard initializes a RedisLeaderboard stored under key that keeps
// at most capacity members and expires ttlSeconds after its first write.
func NewRedisLeaderboard(client *redis.Client, key string, capacity int64, ttlSeconds int) *RedisLeaderboard {
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	board := &RedisLeaderboard{
		client:   client,
		key:      key,
		capacity: capacity,
		ttl:      time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board
}

// Record adds or updates a member's score, sets expiration if necessary and trims the set to capacity.
func (rl *RedisLeaderboard) Record(ctx context.Context, member string, score float64) error {
	_, err := rl.client.ZAdd(ctx, rl.key, redis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rl.client.TTL(ctx, rl.key).Result()
	if err == nil && ttl == -1 && rl.ttl > 0 {
		_ = rl.client.Expire(ctx, rl.key, rl.ttl).Err()
	}

	return rl.trim(ctx)
}

// trim drops the lowest scores beyond capacity while holding the board lock.
func (rl *RedisLeaderboard) trim(ctx context.Context) error {
	mutex := rl.locker.NewMutex(rl.key + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	if rl.client.ZCard(ctx, rl.key).Val() > rl.capacity {
		return rl.client.ZRemRangeByRank(ctx, rl.key, 0, -rl.capacity-1).Err()
	}
	return nil
}

// Top returns up to n members with the highest scores.
func (rl *RedisLeaderboard) Top(ctx context.Context, n int64) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	return rl.client.ZRevRange(ctx, rl.key, 0, n-1).Result()
}

// Remove drops a member from the board.
func (rl *RedisLeaderboard) Remove(ctx context.Context, member string) error {
	return rl.client.ZRem(ctx, rl.key, member).Err()
}
