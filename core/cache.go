package core

import "time"

// MessageCache caches rendered text such as share messages, keyed by
// username. Implementations decide expiry; callers must tolerate any
// Get failing with ErrCacheNotFound.
type MessageCache interface {
	Get(key string) (string, error)
	Set(key, message string) error
	Delete(key string) error
	Clear() error
}

// CacheWithStats extends MessageCache with statistics tracking.
type CacheWithStats interface {
	MessageCache
	Stats() CacheStats
}

// CacheConfig configures cache behavior.
type CacheConfig struct {
	TTL     time.Duration
	MaxSize int
}

// CacheStats are simple counters for cache behavior.
// These are intended for diagnostics and monitoring.
type CacheStats struct {
	Hits      int64         `json:"hits"`
	Misses    int64         `json:"misses"`
	Sets      int64         `json:"sets"`
	Deletes   int64         `json:"deletes"`
	Evictions int64         `json:"evictions"`
	Size      int           `json:"size"`
	TTL       time.Duration `json:"ttl"`
}
