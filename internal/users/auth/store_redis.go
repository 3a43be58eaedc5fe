// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/constants"
	"github.com/taibuivan/scribe/internal/platform/i18n"
)

// RedisRefreshTokenRepository implements RefreshTokenRepository using Redis.
type RedisRefreshTokenRepository struct {
	client redis.Cmdable
}

// NewRefreshTokenRepository creates a new Redis-backed RefreshTokenRepository.
func NewRefreshTokenRepository(client redis.Cmdable) *RedisRefreshTokenRepository {
	return &RedisRefreshTokenRepository{client: client}
}

func refreshKey(tokenHash string) string {
	return constants.RedisPrefixRefreshToken + tokenHash
}

/*
Set stores a refresh token hash with its associated userID and TTL.

Parameters:
  - context: context.Context
  - tokenHash: string
  - userID: int64
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisRefreshTokenRepository) Set(context context.Context, tokenHash string, userID int64, ttl time.Duration) error {
	if err := repository.client.Set(context, refreshKey(tokenHash), userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_refresh_token_set_failed: %w", err)
	}
	return nil
}

/*
Consume reads and deletes the token in one GETDEL round trip.

Returns apperr.Unauthorized if the token is absent or expired.
*/
func (repository *RedisRefreshTokenRepository) Consume(context context.Context, tokenHash string) (int64, error) {
	raw, err := repository.client.GetDel(context, refreshKey(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, apperr.Unauthorized(i18n.ErrAuthInvalidRefresh)
		}
		return 0, fmt.Errorf("redis_refresh_token_consume_failed: %w", err)
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("redis_refresh_token_corrupt_value: %w", err)
	}

	return userID, nil
}

/*
Delete removes the token from Redis.
*/
func (repository *RedisRefreshTokenRepository) Delete(context context.Context, tokenHash string) error {
	if err := repository.client.Del(context, refreshKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("redis_refresh_token_delete_failed: %w", err)
	}
	return nil
}
