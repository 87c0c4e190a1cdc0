package main

import (
	"context"
	"path/filepath"
	"testing"

	"bid-ledger-api/config"
	"bid-ledger-api/internal/storage/file"
	"bid-ledger-api/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildApplication_LocalBackends(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	t.Run("memory", func(t *testing.T) {
		c := *cfg
		c.Storage.Backend = "memory"
		application, cleanup, err := buildApplication(context.Background(), &c)
		require.NoError(t, err)
		defer cleanup()

		assert.IsType(t, &memory.Store{}, application.Store)
		assert.NotNil(t, application.Ledger)
		assert.Nil(t, application.RedisClient)
		assert.Nil(t, application.DBPool)
	})

	t.Run("file", func(t *testing.T) {
		c := *cfg
		c.Storage.Backend = "file"
		c.Storage.FilePath = filepath.Join(t.TempDir(), "applications.json")
		application, cleanup, err := buildApplication(context.Background(), &c)
		require.NoError(t, err)
		defer cleanup()

		assert.IsType(t, &file.Store{}, application.Store)
	})
}

func TestBuildApplication_UnknownBackends(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	c := *cfg
	c.Storage.Backend = "cassandra"
	_, _, err = buildApplication(context.Background(), &c)
	assert.ErrorContains(t, err, "unknown storage backend")

	c = *cfg
	c.Lock.Backend = "zookeeper"
	_, _, err = buildApplication(context.Background(), &c)
	assert.ErrorContains(t, err, "unknown lock backend")
}
