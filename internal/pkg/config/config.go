package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// GpsConfig tunes the geolocation provider collaborator.
type GpsConfig struct {
	MinLatency time.Duration
	MaxLatency time.Duration
	Timeout    time.Duration
}

// RewardsConfig tunes the reward engine. The proximity buffer and the
// attraction range are two different thresholds; both are statute miles.
type RewardsConfig struct {
	ProximityBufferMiles          float64
	AttractionProximityRangeMiles float64
	OracleMinLatency              time.Duration
	OracleMaxLatency              time.Duration
	OracleTimeout                 time.Duration
}

// TrackerConfig tunes the shared worker pool and the background poller.
type TrackerConfig struct {
	PoolWorkers     int
	PoolQueueDepth  int
	PollingInterval time.Duration
}

// PricingConfig tunes the trip pricing collaborator.
type PricingConfig struct {
	APIKey        string
	QuoteCacheTTL time.Duration
}

// Config is the full runtime configuration, loaded from environment
// variables with defaults suitable for a simulated fleet.
type Config struct {
	ServerPort        string
	MetricsPort       string
	InternalUserCount int
	Gps               GpsConfig
	Rewards           RewardsConfig
	Tracker           TrackerConfig
	Pricing           PricingConfig
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:        getEnvOrDefault("SERVER_PORT", "8080"),
		MetricsPort:       getEnvOrDefault("METRICS_PORT", "9092"),
		InternalUserCount: getEnvInt("INTERNAL_USER_COUNT", 100),
		Gps: GpsConfig{
			MinLatency: getEnvDuration("GPS_MIN_LATENCY", 30*time.Millisecond),
			MaxLatency: getEnvDuration("GPS_MAX_LATENCY", 100*time.Millisecond),
			Timeout:    getEnvDuration("GPS_TIMEOUT", 3*time.Second),
		},
		Rewards: RewardsConfig{
			ProximityBufferMiles:          getEnvFloat("REWARD_PROXIMITY_BUFFER_MILES", 10),
			AttractionProximityRangeMiles: getEnvFloat("ATTRACTION_PROXIMITY_RANGE_MILES", 200),
			OracleMinLatency:              getEnvDuration("ORACLE_MIN_LATENCY", 10*time.Millisecond),
			OracleMaxLatency:              getEnvDuration("ORACLE_MAX_LATENCY", 50*time.Millisecond),
			OracleTimeout:                 getEnvDuration("ORACLE_TIMEOUT", 2*time.Second),
		},
		Tracker: TrackerConfig{
			PoolWorkers:     getEnvInt("TRACKER_POOL_WORKERS", 100),
			PoolQueueDepth:  getEnvInt("TRACKER_POOL_QUEUE_DEPTH", 1000),
			PollingInterval: getEnvDuration("TRACKER_POLLING_INTERVAL", 5*time.Minute),
		},
		Pricing: PricingConfig{
			APIKey:        getEnvOrDefault("TRIP_PRICER_API_KEY", "test-server-api-key"),
			QuoteCacheTTL: getEnvDuration("TRIP_QUOTE_CACHE_TTL", 5*time.Minute),
		},
	}

	if cfg.Tracker.PoolWorkers < 1 {
		return nil, fmt.Errorf("TRACKER_POOL_WORKERS must be at least 1")
	}
	if cfg.Rewards.ProximityBufferMiles <= 0 || cfg.Rewards.AttractionProximityRangeMiles <= 0 {
		return nil, fmt.Errorf("proximity thresholds must be positive")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
