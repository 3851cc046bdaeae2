// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud provides OpenRouter integration for recipe generation.
package cloud

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
)

// =============================================================================
// CONTENT-ADDRESSED RESPONSE CACHE
// =============================================================================

// ResponseCache deduplicates identical completion requests for the
// lifetime of the process. The key is a function of the exact serialized
// message sequence, so it is order- and content-sensitive: two
// conversations differing only in turn order produce distinct keys.
//
// There is no eviction and no TTL. The usage pattern never replays an
// identical conversation except for legitimate user no-op retries, so
// the cache stays small. Because the key is purely a function of message
// content, a single cache may be shared across sessions in the same
// process.
type ResponseCache struct {
	mu      sync.RWMutex
	entries map[string]string

	// Hit/miss counters for diagnostics.
	hits   int
	misses int
}

// NewResponseCache creates an empty response cache.
func NewResponseCache() *ResponseCache {
	return &ResponseCache{
		entries: make(map[string]string),
	}
}

// CacheKey computes the content-addressed key for a message sequence:
// the SHA-256 of its canonical JSON serialization.
func CacheKey(messages []ChatMessage) (string, error) {
	serialized, err := json.Marshal(messages)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(serialized)
	return hex.EncodeToString(sum[:]), nil
}

// Get returns the cached reply for key, if present.
func (c *ResponseCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	text, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return text, ok
}

// Put stores a reply under key. Only successful replies are stored;
// failures are never cached so a re-triggered action makes a fresh call.
func (c *ResponseCache) Put(key, text string) {
	c.mu.Lock()
	c.entries[key] = text
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *ResponseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts since process start.
func (c *ResponseCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
