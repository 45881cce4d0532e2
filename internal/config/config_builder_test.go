package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_Priority(t *testing.T) {
	path := writeConfigFile(t, `{"workers": {"sync_interval": "3m"}}`)

	cfg, err := newConfigBuilder().
		withEnv(map[string]string{
			"STORAGE_DB_DATABASE_URI": "env.db",
			"WORKERS_SYNC_INTERVAL":   "1m",
			"ADAPTER_ADDRESS":         "http://env:1",
		}).
		withFlags([]string{"-adapter-address", "http://flag:2", "-c", path}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://flag:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Minute, cfg.Workers.SyncInterval)
}

func TestConfigBuilder_JSONPathFromEnv(t *testing.T) {
	path := writeConfigFile(t, `{"log": {"path": "from-json.log"}}`)

	cfg, err := newConfigBuilder().
		withEnv(map[string]string{"CONFIG": path}).
		withFlags(nil).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "from-json.log", cfg.Log.Path)
}

func TestConfigBuilder_Errors(t *testing.T) {
	t.Run("bad env", func(t *testing.T) {
		_, err := newConfigBuilder().
			withEnv(map[string]string{"ADAPTER_REQUEST_TIMEOUT": "forever"}).
			build()
		assert.Error(t, err)
	})

	t.Run("bad flag skips json", func(t *testing.T) {
		b := newConfigBuilder().
			withEnv(map[string]string{"CONFIG": "/does/not/exist.json"}).
			withFlags([]string{"-nope"}).
			withJSON()

		_, err := b.build()
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "exist.json")
	})

	t.Run("missing json file", func(t *testing.T) {
		_, err := newConfigBuilder().
			withFlags([]string{"-c", "/does/not/exist.json"}).
			withJSON().
			build()
		assert.Error(t, err)
	})

	t.Run("negative duration", func(t *testing.T) {
		_, err := newConfigBuilder().
			withFlags([]string{"-ping-interval", "-1s"}).
			build()
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestConfigBuilder_Empty(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
