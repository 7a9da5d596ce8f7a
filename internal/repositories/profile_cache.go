package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rahulvm/accountd/internal/models"
	"github.com/redis/go-redis/v9"
)

const profilePrefix = "profile:"

// cachedProfile is the wire shape stored in redis. It deliberately has no
// password hash field: only public profile attributes ever enter the cache.
type cachedProfile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

type RedisProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProfileCache(client *redis.Client, ttl time.Duration) *RedisProfileCache {
	return &RedisProfileCache{client: client, ttl: ttl}
}

func (c *RedisProfileCache) Get(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	key := fmt.Sprintf("%s%s", profilePrefix, id)

	jsonData, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile cachedProfile
	if err := json.Unmarshal([]byte(jsonData), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &models.Account{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		CreatedAt: profile.CreatedAt,
	}, nil
}

func (c *RedisProfileCache) Set(ctx context.Context, account *models.Account) error {
	profile := cachedProfile{
		ID:        account.ID,
		Email:     account.Email,
		FullName:  account.FullName,
		CreatedAt: account.CreatedAt,
	}

	jsonData, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	key := fmt.Sprintf("%s%s", profilePrefix, account.ID)
	if err := c.client.Set(ctx, key, jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set profile: %w", err)
	}
	return nil
}
