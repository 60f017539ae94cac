package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glob-dev/users-gateway/internal/logger"
	"github.com/glob-dev/users-gateway/internal/models"
)

// UserCacheRepository keeps recently fetched users in Redis.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewUserCacheRepository creates a new UserCacheRepository. Entries expire
// after the given duration.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{client: client, exp: expiration}
}

func userCacheKey(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, userID int64) (*models.User, error) {
	key := userCacheKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Log.Infow("user cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("user cache get failed", "key", key, "error", err)
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Errorw("user cache entry is not valid JSON", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("user cache hit", "key", key, "result", user)
	return &user, nil
}

// Set stores the user under its id with the configured expiration.
func (r *UserCacheRepository) Set(ctx context.Context, user models.User) error {
	key := userCacheKey(user.UserID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow("user cache set", "key", key, "expiration", r.exp, "error", err)
	return err
}

// Del drops the cached entry for the id. Deleting an absent entry is not an
// error.
func (r *UserCacheRepository) Del(ctx context.Context, userID int64) error {
	key := userCacheKey(userID)

	err := r.client.Del(ctx, key).Err()
	logger.Log.Infow("user cache del", "key", key, "error", err)
	return err
}
