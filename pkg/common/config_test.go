package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Setenv(EnvKeyFMDBType, "memory")
	t.Setenv(EnvKeyFMDefaultRate, "5")
	t.Setenv(EnvKeyFMDefaultBurst, "10")
	t.Setenv(EnvKeyFMHttpHostPort, "")
	t.Setenv(EnvKeyFMTickInterval, "")
	t.Setenv(EnvKeyFMCriticalCount, "")
	t.Setenv(EnvKeyFMAIBaseURL, "")
	t.Setenv(EnvKeyFMRedisPrefix, "")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.DBType)
	assert.Equal(t, DefaultHttpHostPort, cfg.HttpHostPort)
	assert.Equal(t, 5.0, cfg.DefaultRate)
	assert.Equal(t, 10, cfg.DefaultBurst)
	assert.Equal(t, 10*time.Second, cfg.TickInterval)
	assert.Equal(t, 3, cfg.CriticalCount)
	assert.Equal(t, DefaultAIBaseURL, cfg.AIBaseURL)
	assert.Equal(t, DefaultRedisPrefix, cfg.RedisPrefix)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv(EnvKeyFMDBType, "file")
	t.Setenv(EnvKeyFMTickInterval, "30s")
	t.Setenv(EnvKeyFMCriticalCount, "5")
	t.Setenv(EnvKeyFMAIBaseURL, "http://ai.internal:5000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.DBType)
	assert.Equal(t, 30*time.Second, cfg.TickInterval)
	assert.Equal(t, 5, cfg.CriticalCount)
	assert.Equal(t, "http://ai.internal:5000", cfg.AIBaseURL)
}

func TestLoadConfig_EdgeCases(t *testing.T) {
	{
		setBaseEnv(t)
		t.Setenv(EnvKeyFMDefaultRate, "fast")
		_, err := LoadConfig()
		require.Error(t, err)
	}

	{
		setBaseEnv(t)
		t.Setenv(EnvKeyFMDefaultBurst, "")
		_, err := LoadConfig()
		require.Error(t, err)
	}

	{
		setBaseEnv(t)
		t.Setenv(EnvKeyFMTickInterval, "500ms")
		_, err := LoadConfig()
		require.Error(t, err)
	}

	{
		setBaseEnv(t)
		t.Setenv(EnvKeyFMDBType, "postgres")
		_, err := LoadConfig()
		require.Error(t, err)
	}

	{
		setBaseEnv(t)
		t.Setenv(EnvKeyFMCriticalCount, "22")
		_, err := LoadConfig()
		require.Error(t, err)
	}
}
