package cache

import (
	"fmt"

	"github.com/jessndots/express-jobly/internal/platform/config"
)

// New creates the backend selected by cfg.Backend.
func New(cfg config.CacheConfig) (Cache, error) {
	switch CacheType(cfg.Backend) {
	case CacheTypeMemory:
		return NewMemoryCache(cfg.MaxKeys, cfg.CleanupInterval), nil
	case CacheTypeRedis:
		return NewRedisCache(cfg.Redis)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidCacheType, cfg.Backend)
	}
}

// NewService creates the backend and wraps it in a GenericCacheService. A
// disabled configuration yields a service that always misses.
func NewService(cfg config.CacheConfig) (*GenericCacheService, error) {
	if !cfg.Enabled {
		return NewGenericCacheService(nil, cfg), nil
	}
	backend, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return NewGenericCacheService(backend, cfg), nil
}
