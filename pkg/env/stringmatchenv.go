package env

import (
	"time"
)

const (
	LogLevelEnvVar = "STRINGMATCH_LOG_LEVEL"

	CacheTTLEnvVar             = "STRINGMATCH_CACHE_TTL"
	CacheCleanupIntervalEnvVar = "STRINGMATCH_CACHE_CLEANUP_INTERVAL"
)

// GetLogLevel returns the configured log level for the process, used when
// logging is initialized outside of a flag-bound command.
func GetLogLevel() string {
	return Get(LogLevelEnvVar, "info")
}

// GetCacheTTL returns how long a compiled matcher stays cached before it is
// eligible for eviction.
func GetCacheTTL() time.Duration {
	return GetDuration(CacheTTLEnvVar, 10*time.Minute)
}

// GetCacheCleanupInterval returns how often expired cache entries are swept.
func GetCacheCleanupInterval() time.Duration {
	return GetDuration(CacheCleanupIntervalEnvVar, 5*time.Minute)
}
