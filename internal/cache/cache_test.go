package cache

import "testing"

func TestCacheSetGet(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1)
	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("Get(missing) returned ok=true")
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](2)
	c.Set(1, 10)
	c.Set(2, 20)
	// touch 1 so 2 becomes the least recently used
	c.Get(1)
	c.Set(3, 30)

	if _, ok := c.Get(2); ok {
		t.Fatalf("expected key 2 to be evicted")
	}
	if _, ok := c.Get(1); !ok {
		t.Fatalf("expected key 1 to survive eviction")
	}
	if _, ok := c.Get(3); !ok {
		t.Fatalf("expected key 3 to be present")
	}
	if got := c.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	if v := c.GetOrCreate("k", create); v != 42 {
		t.Fatalf("GetOrCreate = %d, want 42", v)
	}
	if v := c.GetOrCreate("k", create); v != 42 {
		t.Fatalf("GetOrCreate (cached) = %d, want 42", v)
	}
	if calls != 1 {
		t.Fatalf("create called %d times, want 1", calls)
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New[int, int](0)
	c.Set(1, 1)
	c.Set(2, 2)

	if !c.Delete(1) {
		t.Fatalf("Delete(1) = false, want true")
	}
	if c.Delete(1) {
		t.Fatalf("Delete(1) again = true, want false")
	}

	c.Clear()
	if got := c.Len(); got != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", got)
	}
}
