package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	t.Run("RoundTrip", func(t *testing.T) {
		if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
			t.Fatalf("Set: %v", err)
		}
		data, hit, err := c.Get(ctx, "key")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !hit {
			t.Fatal("expected hit after Set")
		}
		if string(data) != "value" {
			t.Errorf("Get = %q, want value", data)
		}
	})

	t.Run("MissForAbsentKey", func(t *testing.T) {
		_, hit, err := c.Get(ctx, "absent")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if hit {
			t.Error("Get of absent key reported a hit")
		}
	})

	t.Run("Expiration", func(t *testing.T) {
		if err := c.Set(ctx, "fleeting", []byte("x"), time.Nanosecond); err != nil {
			t.Fatalf("Set: %v", err)
		}
		time.Sleep(time.Millisecond)
		_, hit, err := c.Get(ctx, "fleeting")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if hit {
			t.Error("expired entry reported as hit")
		}
	})

	t.Run("NoTTLNeverExpires", func(t *testing.T) {
		if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
		_, hit, err := c.Get(ctx, "forever")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !hit {
			t.Error("entry without ttl reported as miss")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		_ = c.Set(ctx, "doomed", []byte("x"), time.Hour)
		if err := c.Delete(ctx, "doomed"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		_, hit, _ := c.Get(ctx, "doomed")
		if hit {
			t.Error("deleted entry reported as hit")
		}
		if err := c.Delete(ctx, "doomed"); err != nil {
			t.Errorf("Delete of absent key: %v", err)
		}
	})
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if got := k.AnalysisKey("abc"); got != "analysis:abc" {
		t.Errorf("AnalysisKey = %q, want analysis:abc", got)
	}

	p1 := k.PathsKey("abc", "a", "d")
	p2 := k.PathsKey("abc", "a", "e")
	if p1 == p2 {
		t.Error("Different endpoints should produce different path keys")
	}

	r1 := k.RenderKey("abc", "svg")
	r2 := k.RenderKey("abc", "png")
	if r1 == r2 {
		t.Error("Different formats should produce different render keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	base := NewDefaultKeyer()
	scoped := NewScopedKeyer(base, "user:42:")

	if got, want := scoped.AnalysisKey("abc"), "user:42:analysis:abc"; got != want {
		t.Errorf("AnalysisKey = %q, want %q", got, want)
	}
	if scoped.PathsKey("abc", "a", "b") == base.PathsKey("abc", "a", "b") {
		t.Error("scoped key should differ from unscoped key")
	}
}
