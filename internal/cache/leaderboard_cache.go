package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// LeaderboardCache holds pre-ranked leaderboards in Redis for a few seconds.
// Clients poll the leaderboard on a short interval, so even a small TTL
// absorbs nearly all of the read load. Cache failures degrade to a database
// read; they are logged but never surfaced to the caller.
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLeaderboardCache(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{client: client, ttl: ttl}
}

func (c *LeaderboardCache) Get(ctx context.Context, quizID uint) (*dto.LeaderboardDTO, bool) {
	payload, err := c.client.Get(ctx, key(quizID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Uint("quizID", quizID).Msg("Leaderboard cache read failed")
		}
		return nil, false
	}

	var lb dto.LeaderboardDTO
	if err := json.Unmarshal(payload, &lb); err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("Leaderboard cache entry is corrupt, dropping it")
		c.client.Del(ctx, key(quizID))
		return nil, false
	}
	return &lb, true
}

func (c *LeaderboardCache) Set(ctx context.Context, quizID uint, lb *dto.LeaderboardDTO) {
	payload, err := json.Marshal(lb)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("Failed to marshal leaderboard for cache")
		return
	}
	if err := c.client.Set(ctx, key(quizID), payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("Leaderboard cache write failed")
	}
}

// Invalidate drops the cached leaderboard after a new result is accepted so
// pollers see the fresh ranking on their next request.
func (c *LeaderboardCache) Invalidate(ctx context.Context, quizID uint) {
	if err := c.client.Del(ctx, key(quizID)).Err(); err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("Leaderboard cache invalidation failed")
	}
}

func key(quizID uint) string {
	return fmt.Sprintf("leaderboard:%d", quizID)
}
