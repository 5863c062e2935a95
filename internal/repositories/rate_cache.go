package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/logger"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
)

// RateCacheRepository keeps the latest fetched bid per pair in Redis so a
// restarted process can serve a value before its first poll completes.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached bids
}

// NewRateCacheRepository creates a new repository instance with a TTL.
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateKey(pair models.SymbolPair) string {
	return fmt.Sprintf("rate:%s:%s", pair.Base(), pair.Quote())
}

// GetRate fetches the cached bid for a pair.
func (r *RateCacheRepository) GetRate(ctx context.Context, pair models.SymbolPair) (string, error) {
	key := rateKey(pair)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return "", fmt.Errorf("rate not cached for %s", pair)
		}
		return "", err
	}

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", nil,
	)

	return val, nil
}

// SetRate caches the bid for a pair with expiration.
func (r *RateCacheRepository) SetRate(ctx context.Context, pair models.SymbolPair, bid string) error {
	key := rateKey(pair)
	err := r.client.Set(ctx, key, bid, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"bid", bid,
		"result", "ok",
		"error", err,
	)

	return err
}
