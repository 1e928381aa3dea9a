package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/eidetic/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	profileKeyPrefix = "profile:"
	profilesKey      = "profiles"
)

// Config holds configuration for the Redis profile repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveProfile persists a profile to Redis
func (r *redisRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if input == nil || input.Profile == nil {
		return errors.New("input and profile cannot be nil")
	}

	profile := input.Profile

	if profile.ID == "" {
		return errors.New("profile ID cannot be empty")
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	pipe := r.client.TxPipeline()

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, profile.ID)
	pipe.Set(ctx, profileKey, profileJSON, 0) // profiles never expire
	pipe.SAdd(ctx, profilesKey, profile.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile by ID from Redis
func (r *redisRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.New("input and profile ID cannot be empty")
	}

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, input.ProfileID)
	profileJSON, err := r.client.Get(ctx, profileKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// DeleteProfile removes a profile from Redis
func (r *redisRepository) DeleteProfile(ctx context.Context, input *DeleteProfileInput) error {
	if input == nil || input.ProfileID == "" {
		return errors.New("input and profile ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", profileKeyPrefix, input.ProfileID))
	pipe.SRem(ctx, profilesKey, input.ProfileID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}
