package cache

import (
	"context"
	"decision-engine/internal/domain/decision"
	"decision-engine/internal/pkg/apperrors"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "decision"

// RedisOfferCache stores approved offers keyed by the request that produced them.
type RedisOfferCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

var _ decision.OfferCache = (*RedisOfferCache)(nil)

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

func NewRedisOfferCache(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *RedisOfferCache {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &RedisOfferCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "RedisOfferCache"),
	}
}

func Key(personalCode string, amount, period int) string {
	return fmt.Sprintf("%s:%s:%d:%d", keyPrefix, personalCode, amount, period)
}

func (c *RedisOfferCache) Get(ctx context.Context, personalCode string, amount, period int) (*decision.LoanOffer, bool, error) {
	val, err := c.client.Get(ctx, Key(personalCode, amount, period)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.WrapCacheError(err, "failed to read offer")
	}

	var offer decision.LoanOffer
	if err := json.Unmarshal([]byte(val), &offer); err != nil {
		c.logger.WarnContext(ctx, "Discarding undecodable cached offer", slog.Any("error", err))
		return nil, false, apperrors.WrapCacheError(err, "failed to decode offer")
	}
	return &offer, true, nil
}

func (c *RedisOfferCache) Set(ctx context.Context, personalCode string, amount, period int, offer decision.LoanOffer) error {
	body, err := json.Marshal(offer)
	if err != nil {
		return apperrors.WrapCacheError(err, "failed to encode offer")
	}
	if err := c.client.Set(ctx, Key(personalCode, amount, period), body, c.ttl).Err(); err != nil {
		return apperrors.WrapCacheError(err, "failed to store offer")
	}
	return nil
}
