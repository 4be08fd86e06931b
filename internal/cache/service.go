package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/jessndots/express-jobly/internal/pkg/log"
	"github.com/jessndots/express-jobly/internal/platform/config"
)

// GenericCacheService stores JSON-encoded values under a common key prefix
type GenericCacheService struct {
	cache  Cache
	ttl    time.Duration
	prefix string
}

// NewGenericCacheService creates a new generic cache service. A nil cache
// disables caching.
func NewGenericCacheService(cache Cache, cfg config.CacheConfig) *GenericCacheService {
	prefix := cfg.Prefix
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return &GenericCacheService{cache: cache, ttl: cfg.TTL, prefix: prefix}
}

// IsEnabled returns whether caching is enabled
func (gcs *GenericCacheService) IsEnabled() bool {
	return gcs != nil && gcs.cache != nil
}

// GetCached retrieves and unmarshals cached data into target
func (gcs *GenericCacheService) GetCached(ctx context.Context, key string, target interface{}) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}

	fullKey := gcs.buildKey(key)
	data, err := gcs.cache.Get(ctx, fullKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Error("Cache get error for key %s: %v", fullKey, err)
		}
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		log.Error("Cache data unmarshal error for key %s: %v", fullKey, err)
		return fmt.Errorf("%w: %v", ErrDeserializationFailed, err)
	}
	return nil
}

// CacheData marshals and stores data with the configured TTL
func (gcs *GenericCacheService) CacheData(ctx context.Context, key string, data interface{}) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		log.Error("Cache data marshal error for key %s: %v", key, err)
		return fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}

	fullKey := gcs.buildKey(key)
	if err := gcs.cache.Set(ctx, fullKey, encoded, gcs.ttl); err != nil {
		log.Error("Cache set error for key %s: %v", fullKey, err)
		return err
	}
	return nil
}

// InvalidatePattern removes all keys matching pattern under the prefix
func (gcs *GenericCacheService) InvalidatePattern(ctx context.Context, pattern string) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}

	fullPattern := gcs.buildKey(pattern)
	if err := gcs.cache.DeletePattern(ctx, fullPattern); err != nil {
		log.Error("Cache pattern invalidation error for pattern %s: %v", fullPattern, err)
		return err
	}
	return nil
}

// InvalidateKey removes a specific key
func (gcs *GenericCacheService) InvalidateKey(ctx context.Context, key string) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}

	fullKey := gcs.buildKey(key)
	if err := gcs.cache.Delete(ctx, fullKey); err != nil {
		log.Error("Cache key invalidation error for key %s: %v", fullKey, err)
		return err
	}
	return nil
}

// GenerateHashKey creates a deterministic key from prefix and params.
// Nil values, including typed nil pointers, are skipped so absent filters
// hash like missing ones.
func (gcs *GenericCacheService) GenerateHashKey(prefix string, params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if !isNil(v) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	h := sha256.New()
	h.Write([]byte(prefix + ":"))
	for _, k := range keys {
		var valueStr string
		switch val := params[k].(type) {
		case string:
			valueStr = val
		default:
			if encoded, err := json.Marshal(val); err == nil {
				valueStr = string(encoded)
			} else {
				valueStr = fmt.Sprintf("%v", val)
			}
		}
		fmt.Fprintf(h, "%s=%s;", k, valueStr)
	}

	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(h.Sum(nil))[:16])
}

// Stats returns backend statistics
func (gcs *GenericCacheService) Stats() CacheStats {
	if !gcs.IsEnabled() {
		return CacheStats{}
	}
	return gcs.cache.Stats()
}

// Close closes the backend
func (gcs *GenericCacheService) Close() error {
	if !gcs.IsEnabled() {
		return nil
	}
	return gcs.cache.Close()
}

func (gcs *GenericCacheService) buildKey(key string) string {
	return gcs.prefix + key
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
