package config

import "time"

// CacheConfig defines settings for the catalog response cache.  The catalog
// is static, so cached responses only need a TTL long enough to absorb page
// loads, not correctness handling for invalidation.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: envBool("CACHE_ENABLED", true),
		TTL:     envDur("CACHE_TTL", 5*time.Minute),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}
