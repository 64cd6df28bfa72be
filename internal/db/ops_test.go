package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var DBPool *DB

// Setup the testcontainer DB before running any dbOps tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		panic(err)
	}
	defer pgContainer.Terminate(ctx)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}
	migrationsPath := "./migrations"

	DBPool, err = Init(ctx, Config{
		ConnString:     connStr,
		MigrationsPath: migrationsPath,
	})
	if err != nil {
		panic(err)
	}

	m.Run()

	DBPool.Close()
	pgContainer.Terminate(ctx)
}

func TestOps(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	got, err := DBPool.LoadDevices(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	devices := []Device{
		{ID: 2, Name: "van", LastUpdate: now, Status: "online"},
		{ID: 1, Name: "bike", LastUpdate: now, Status: "offline"},
	}
	require.NoError(t, DBPool.UpsertDevices(ctx, devices))

	got, err = DBPool.LoadDevices(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "bike", got[0].Name)
	assert.True(t, now.Equal(got[0].LastUpdate))

	require.NoError(t, DBPool.UpsertDevices(ctx, []Device{
		{ID: 1, Name: "cargo bike", LastUpdate: now.Add(time.Minute), Status: "online"},
	}))

	got, err = DBPool.LoadDevices(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "cargo bike", got[0].Name)
	assert.Equal(t, "online", got[0].Status)
}
