// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"sync"
	"testing"
)

// =============================================================================
// CACHE KEY TESTS
// =============================================================================

func TestCacheKey_ContentSensitive(t *testing.T) {
	a := []ChatMessage{NewUserMessage("hello")}
	b := []ChatMessage{NewUserMessage("hello!")}

	keyA, err := CacheKey(a)
	if err != nil {
		t.Fatalf("CacheKey(a) error: %v", err)
	}
	keyB, err := CacheKey(b)
	if err != nil {
		t.Fatalf("CacheKey(b) error: %v", err)
	}

	if keyA == keyB {
		t.Error("different contents should produce different keys")
	}
}

func TestCacheKey_OrderSensitive(t *testing.T) {
	a := []ChatMessage{NewUserMessage("x"), NewAssistantMessage("y")}
	b := []ChatMessage{NewAssistantMessage("y"), NewUserMessage("x")}

	keyA, _ := CacheKey(a)
	keyB, _ := CacheKey(b)
	if keyA == keyB {
		t.Error("reordered conversations should produce different keys")
	}
}

func TestCacheKey_Deterministic(t *testing.T) {
	messages := []ChatMessage{
		NewUserMessage("prompt"),
		NewAssistantMessage("reply"),
		NewUserMessage("followup"),
	}

	first, err := CacheKey(messages)
	if err != nil {
		t.Fatalf("CacheKey error: %v", err)
	}
	for i := 0; i < 10; i++ {
		key, _ := CacheKey(messages)
		if key != first {
			t.Fatalf("CacheKey not deterministic: %q vs %q", key, first)
		}
	}
}

// =============================================================================
// CACHE BEHAVIOR TESTS
// =============================================================================

func TestResponseCache_GetPut(t *testing.T) {
	cache := NewResponseCache()

	if _, ok := cache.Get("missing"); ok {
		t.Error("Get on empty cache should miss")
	}

	cache.Put("k", "v")
	text, ok := cache.Get("k")
	if !ok || text != "v" {
		t.Errorf("Get(k) = %q, %v, want 'v', true", text, ok)
	}

	hits, misses := cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses, want 1, 1", hits, misses)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestResponseCache_ConcurrentAccess(t *testing.T) {
	cache := NewResponseCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key, _ := CacheKey([]ChatMessage{NewUserMessage(string(rune('a' + n%10)))})
			cache.Put(key, "text")
			cache.Get(key)
		}(i)
	}
	wg.Wait()

	if cache.Len() != 10 {
		t.Errorf("Len() = %d after concurrent writes, want 10", cache.Len())
	}
}
