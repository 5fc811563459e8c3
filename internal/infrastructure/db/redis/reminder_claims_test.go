package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestClaimKey(t *testing.T) {
	day := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "reminder:abc:2024-02-29", claimKey("abc", day))
}

func TestReminderClaims_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Redis integration test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	addr, err := container.PortEndpoint(ctx, "6379/tcp", "")
	require.NoError(t, err)

	client, err := Connect(ctx, Config{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	claims := NewReminderClaims(client)
	day := time.Date(2024, time.May, 17, 0, 0, 0, 0, time.UTC)

	ok, err := claims.Claim(ctx, "b1", day)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = claims.Claim(ctx, "b1", day)
	require.NoError(t, err)
	assert.False(t, ok, "second claim for the same day must lose")

	ok, err = claims.Claim(ctx, "b1", day.AddDate(1, 0, 0))
	require.NoError(t, err)
	assert.True(t, ok, "a new year is a new claim")

	require.NoError(t, claims.Release(ctx, "b1", day))
	ok, err = claims.Claim(ctx, "b1", day)
	require.NoError(t, err)
	assert.True(t, ok, "released claims can be taken again")

	ttl, err := client.TTL(ctx, claimKey("b1", day)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 47*time.Hour)
}
