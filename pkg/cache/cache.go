// Package cache is the in-process read-through cache shared by the entity
// services. Entries are keyed by operation name plus arguments, and writes
// evict coarsely by operation-name prefix. The cache is advisory: a miss only
// costs a store round trip, never correctness.
package cache

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// keySeparator delimits the segments of a cache key.
const keySeparator = "::"

// Key builds a stable cache key from an operation name and its arguments.
func Key(op string, args ...any) string {
	if len(args) == 0 {
		return op
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, op)
	for _, arg := range args {
		parts = append(parts, fmt.Sprintf("%v", arg))
	}
	return strings.Join(parts, keySeparator)
}

// Store is a bounded LRU cache. A nil *Store is valid and behaves as a
// disabled cache: every read misses and writes are dropped.
type Store struct {
	lru *lru.Cache[string, any]
}

// New returns a Store holding at most capacity entries. Non-positive
// capacities fall back to a default.
func New(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = 1024
	}
	c, err := lru.New[string, any](capacity)
	if err != nil {
		return nil, fmt.Errorf("cache init: %w", err)
	}
	return &Store{lru: c}, nil
}

func (s *Store) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	return s.lru.Get(key)
}

func (s *Store) Put(key string, value any) {
	if s == nil {
		return
	}
	s.lru.Add(key, value)
}

func (s *Store) Delete(key string) {
	if s == nil {
		return
	}
	s.lru.Remove(key)
}

// Invalidate removes every entry whose key starts with prefix. Used for
// coarse eviction, e.g. all cached list pages of one entity type.
func (s *Store) Invalidate(prefix string) {
	if s == nil {
		return
	}
	for _, k := range s.lru.Keys() {
		if strings.HasPrefix(k, prefix) {
			s.lru.Remove(k)
		}
	}
}

// Len reports the current number of cached entries.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return s.lru.Len()
}
