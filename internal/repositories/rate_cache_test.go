package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRateCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	// Get container host and port
	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewRateCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get rate", func(t *testing.T) {
		err := repo.SetRate(ctx, "USDBRL", "5.32")
		assert.NoError(t, err)

		got, err := repo.GetRate(ctx, "USDBRL")
		assert.NoError(t, err)
		assert.Equal(t, "5.32", got)
	})

	t.Run("Get missing rate", func(t *testing.T) {
		_, err := repo.GetRate(ctx, "EURJPY")
		assert.Error(t, err)
	})

	t.Run("Rate expires", func(t *testing.T) {
		err := repo.SetRate(ctx, "USDEUR", "0.91")
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, err = repo.GetRate(ctx, "USDEUR")
		assert.Error(t, err)
	})
}
