package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisOnce    sync.Once
	sharedRedis  string
	redisInitErr error
)

// SetupTestRedis starts a shared Redis container and returns a client bound
// to it. The client is closed via t.Cleanup.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("testhelper: skipping container-backed test in -short mode")
	}

	redisOnce.Do(func() {
		sharedRedis, redisInitErr = startRedis()
	})
	if redisInitErr != nil {
		t.Fatalf("testhelper: failed to setup test redis: %v", redisInitErr)
	}

	rdb := redis.NewClient(&redis.Options{Addr: sharedRedis})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	return rdb
}

func startRedis() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "6379/tcp", "")
	if err != nil {
		return "", fmt.Errorf("get endpoint: %w", err)
	}
	return endpoint, nil
}
