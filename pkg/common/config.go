package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
)

const (
	DefaultHttpHostPort  = ":1080"
	DefaultTickInterval  = 10 * time.Second
	DefaultCriticalCount = 3
	DefaultAIBaseURL     = "http://localhost:5000"
	DefaultRedisPrefix   = "factory-monitor"
)

type Config struct {
	DBType        string
	DBPath        string
	HttpHostPort  string
	GrpcHostPort  string
	DefaultRate   float64
	DefaultBurst  int
	TickInterval  time.Duration
	CriticalCount int
	AIBaseURL     string
	RedisAddr     string
	RedisPrefix   string
}

var configSchema = z.Struct(z.Shape{
	"DBType":        z.String().OneOf([]string{"file", "memory"}).Required(),
	"HttpHostPort":  z.String().Min(1).Required(),
	"DefaultRate":   z.Float64().GTE(0),
	"DefaultBurst":  z.Int().GTE(0),
	"CriticalCount": z.Int().GTE(0).LTE(21),
	"AIBaseURL":     z.String().Min(1).Required(),
	"RedisPrefix":   z.String().Min(1).Required(),
})

// LoadConfig reads the FM_* environment (after godotenv has populated it) and applies defaults.
func LoadConfig() (*Config, error) {
	var err error

	cfg := &Config{
		DBType:        strings.TrimSpace(os.Getenv(EnvKeyFMDBType)),
		DBPath:        strings.TrimSpace(os.Getenv(EnvKeyFMDbPath)),
		HttpHostPort:  strings.TrimSpace(os.Getenv(EnvKeyFMHttpHostPort)),
		GrpcHostPort:  strings.TrimSpace(os.Getenv(EnvKeyFMGrpcHostPort)),
		TickInterval:  DefaultTickInterval,
		CriticalCount: DefaultCriticalCount,
		AIBaseURL:     strings.TrimSpace(os.Getenv(EnvKeyFMAIBaseURL)),
		RedisAddr:     strings.TrimSpace(os.Getenv(EnvKeyFMRedisAddr)),
		RedisPrefix:   strings.TrimSpace(os.Getenv(EnvKeyFMRedisPrefix)),
	}

	if cfg.DBType == "" {
		cfg.DBType = "memory"
	}
	if cfg.HttpHostPort == "" {
		cfg.HttpHostPort = DefaultHttpHostPort
	}
	if cfg.AIBaseURL == "" {
		cfg.AIBaseURL = DefaultAIBaseURL
	}
	if cfg.RedisPrefix == "" {
		cfg.RedisPrefix = DefaultRedisPrefix
	}

	if cfg.DefaultRate, err = strconv.ParseFloat(os.Getenv(EnvKeyFMDefaultRate), 64); err != nil {
		return nil, fmt.Errorf("invalid %s, should be a float64 value: %w", EnvKeyFMDefaultRate, err)
	}

	if cfg.DefaultBurst, err = strconv.Atoi(os.Getenv(EnvKeyFMDefaultBurst)); err != nil {
		return nil, fmt.Errorf("invalid %s, should be an int value: %w", EnvKeyFMDefaultBurst, err)
	}

	if v := strings.TrimSpace(os.Getenv(EnvKeyFMTickInterval)); v != "" {
		if cfg.TickInterval, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid %s, should be a duration like 10s: %w", EnvKeyFMTickInterval, err)
		}
	}
	if cfg.TickInterval < time.Second {
		return nil, fmt.Errorf("invalid %s, should be at least 1s, got %v", EnvKeyFMTickInterval, cfg.TickInterval)
	}

	if v := strings.TrimSpace(os.Getenv(EnvKeyFMCriticalCount)); v != "" {
		if cfg.CriticalCount, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid %s, should be an int value: %w", EnvKeyFMCriticalCount, err)
		}
	}

	if issues := configSchema.Validate(cfg); issues != nil {
		return nil, fmt.Errorf("invalid config: %v", issues)
	}

	return cfg, nil
}
