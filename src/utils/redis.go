package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-EduSync/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database
// package; nil when Redis was not configured.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// StoreRefreshToken เก็บ refresh token ใน Redis พร้อม expiration.
// Returns nil if Redis is not available (development mode).
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	if err := client.Set(Ctx, key, refreshToken, expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken checks the stored token. Returns true when Redis is
// not available so development setups keep working.
func ValidateRefreshToken(userID, refreshToken string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return true, nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	storedToken, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get refresh token: %v", err)
	}
	return storedToken == refreshToken, nil
}

// DeleteRefreshToken removes the refresh token on logout.
func DeleteRefreshToken(userID string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}
	return client.Del(Ctx, fmt.Sprintf("refresh_token:%s", userID)).Err()
}

// BlacklistToken marks an access token revoked until it would have expired.
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}
	return client.Set(Ctx, fmt.Sprintf("blacklist:%s", token), "1", expiresIn).Err()
}

// IsTokenBlacklisted reports whether a token was revoked. Returns false when
// Redis is not available.
func IsTokenBlacklisted(token string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	_, err := client.Get(Ctx, fmt.Sprintf("blacklist:%s", token)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}

// RedisCache adapts the shared Redis client to the attendance stats cache.
// All operations degrade to no-ops without Redis.
type RedisCache struct{}

func NewRedisCache() *RedisCache { return &RedisCache{} }

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	client := ensureClient()
	if client == nil {
		return "", false
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	client := ensureClient()
	if client == nil {
		return
	}
	client.Set(ctx, key, value, ttl)
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) {
	client := ensureClient()
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}
