package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching downloaded corpus bytes
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a corpus mirror URL
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "quranart:v1:" + hex.EncodeToString(hash[:])
}
