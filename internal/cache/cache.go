package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for in-process caching of parsed values
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	Clear()
	Len() int
}

// Key generates a cache key from its parts
func Key(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return "casecalc:v1:" + hex.EncodeToString(hash[:])
}

// Nop is a cache that stores nothing
type Nop struct{}

func (Nop) Get(string) (interface{}, bool) { return nil, false }
func (Nop) Set(string, interface{}, time.Duration) {}
func (Nop) Delete(string) {}
func (Nop) Clear() {}
func (Nop) Len() int { return 0 }
