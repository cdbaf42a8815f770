package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

// singleShard forces every key into one shard so per-shard capacity is
// observable from tests.
func singleShard(string) uint64 { return 0 }

func TestNew(t *testing.T) {
	c := New[string, int](100, StringHasher)
	if c == nil {
		t.Fatal("New returned nil")
	}
	if c.Capacity() != 100 {
		t.Errorf("expected capacity 100, got %d", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}

	if d := New[string, int](0, StringHasher); d.Capacity() != DefaultCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultCapacity, d.Capacity())
	}
}

func TestGetSet(t *testing.T) {
	c := New[string, int](10, StringHasher)

	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok {
		t.Error("expected key1 to exist")
	}
	if val != 42 {
		t.Errorf("expected 42, got %d", val)
	}

	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}

	// Overwrite updates in place.
	c.Set("key1", 43)
	if val, _ := c.Get("key1"); val != 43 {
		t.Errorf("expected 43 after overwrite, got %d", val)
	}
}

func TestTTLExpiry(t *testing.T) {
	c := New[string, int](10, StringHasher)

	c.SetTTL("short", 1, 10*time.Millisecond)
	c.SetTTL("forever", 2, 0) // non-positive ttl means no expiry

	if _, ok := c.Get("short"); !ok {
		t.Error("entry should be readable before expiry")
	}

	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("entry should have expired")
	}
	if _, ok := c.Get("forever"); !ok {
		t.Error("zero-ttl entry should not expire")
	}
}

func TestLRUEviction(t *testing.T) {
	c := New[string, int](2, singleShard)

	c.Set("a", 1)
	c.Set("b", 2)
	if _, ok := c.Get("a"); !ok { // touch "a" so "b" is oldest
		t.Fatal("a should exist")
	}
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should have survived")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should exist")
	}
	if c.Stats().Evictions != 1 {
		t.Errorf("evictions = %d, want 1", c.Stats().Evictions)
	}
}

func TestDelete(t *testing.T) {
	c := New[string, int](10, StringHasher)
	c.Set("k", 1)

	if !c.Delete("k") {
		t.Error("Delete should report the entry was present")
	}
	if c.Delete("k") {
		t.Error("Delete should report absence the second time")
	}
	if _, ok := c.Get("k"); ok {
		t.Error("entry should be gone")
	}
}

func TestClear(t *testing.T) {
	c := New[string, int](10, StringHasher)
	for i := 0; i < 50; i++ {
		c.Set(strconv.Itoa(i), i)
	}
	if c.Len() != 50 {
		t.Fatalf("Len = %d, want 50", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestStats(t *testing.T) {
	c := New[string, int](10, StringHasher)
	c.Set("k", 1)

	c.Get("k")       // hit
	c.Get("missing") // miss

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 1/1", s.Hits, s.Misses)
	}
	if s.HitRate != 0.5 {
		t.Errorf("hit rate = %v, want 0.5", s.HitRate)
	}

	c.ResetStats()
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Errorf("stats not reset: %+v", s)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[string, int](64, StringHasher)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := strconv.Itoa(i % 32)
				c.Set(key, g*1000+i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() == 0 {
		t.Error("cache should contain entries after concurrent writes")
	}
}
