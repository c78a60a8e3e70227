package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/albert/pkg/state"
	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps game plans in Redis as JSON.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance. redisURL is either a
// host:port address or a redis:// URL. Saved games expire after ttl; zero
// keeps them forever.
func NewRedisStorage(redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisStorage, error) {
	opts := &redis.Options{Addr: redisURL}
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		var err error
		opts, err = redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
	}

	return &RedisStorage{
		client: redis.NewClient(opts),
		logger: logger,
		ttl:    ttl,
	}, nil
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context, maxRetries int, retryDelay time.Duration) error {
	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStorage) SaveGamePlan(ctx context.Context, id uuid.UUID, gp *state.GamePlan) error {
	if gp == nil {
		return ErrNilGamePlan
	}
	gp.UpdatedAt = time.Now()

	data, err := json.Marshal(gp)
	if err != nil {
		r.logger.Error("Failed to marshal gameplan", "uuid", id, "error", err)
		return fmt.Errorf("failed to marshal gameplan: %w", err)
	}

	if err := r.client.Set(ctx, gamePlanKey(id), data, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save gameplan", "uuid", id, "error", err)
		return fmt.Errorf("failed to save gameplan: %w", err)
	}

	r.logger.Debug("Gameplan saved", "uuid", id, "size", len(data))
	return nil
}

func (r *RedisStorage) LoadGamePlan(ctx context.Context, id uuid.UUID) (*state.GamePlan, error) {
	data, err := r.client.Get(ctx, gamePlanKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Warn("Gameplan not found", "uuid", id)
			return nil, nil
		}
		r.logger.Error("Failed to load gameplan", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load gameplan: %w", err)
	}

	var gp state.GamePlan
	if err := json.Unmarshal(data, &gp); err != nil {
		r.logger.Error("Failed to unmarshal gameplan", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal gameplan: %w", err)
	}

	return &gp, nil
}

func (r *RedisStorage) DeleteGamePlan(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, gamePlanKey(id)).Err(); err != nil {
		r.logger.Error("Failed to delete gameplan", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete gameplan: %w", err)
	}
	return nil
}
