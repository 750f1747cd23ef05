package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
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

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// LayoutKey should include device hash and options in the key
	lk1 := k.LayoutKey("dev123", LayoutKeyOpts{Spacing: 150, Rows: 1})
	lk2 := k.LayoutKey("dev123", LayoutKeyOpts{Spacing: 150, Rows: 2})
	if lk1 == lk2 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}
	if lk1 != k.LayoutKey("dev123", LayoutKeyOpts{Spacing: 150, Rows: 1}) {
		t.Error("LayoutKey should be deterministic")
	}
	if lk1 == k.LayoutKey("dev456", LayoutKeyOpts{Spacing: 150, Rows: 1}) {
		t.Error("Different device hashes should produce different keys")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("layout1", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("layout1", ArtifactKeyOpts{Format: "png"})
	if ak1 == ak2 {
		t.Error("Different formats should produce different keys")
	}

	// Layout and artifact keys never collide thanks to the prefix
	if lk1[:7] != "layout:" {
		t.Errorf("LayoutKey should carry the layout prefix, got %s", lk1[:7])
	}
	if ak1[:9] != "artifact:" {
		t.Errorf("ArtifactKey should carry the artifact prefix, got %s", ak1[:9])
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "tenant:a:")

	lk := scoped.LayoutKey("dev123", LayoutKeyOpts{Spacing: 150})
	want := "tenant:a:" + inner.LayoutKey("dev123", LayoutKeyOpts{Spacing: 150})
	if lk != want {
		t.Errorf("LayoutKey = %s, want %s", lk, want)
	}

	ak := scoped.ArtifactKey("layout1", ArtifactKeyOpts{Format: "svg"})
	if ak[:9] != "tenant:a:" {
		t.Errorf("ArtifactKey should carry the scope prefix, got %s", ak)
	}

	// Nil inner falls back to the default keyer
	fallback := NewScopedKeyer(nil, "p:")
	if fallback.LayoutKey("h", LayoutKeyOpts{}) != "p:"+inner.LayoutKey("h", LayoutKeyOpts{}) {
		t.Error("nil inner keyer should default")
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before any write
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("fresh cache should miss")
	}

	if err := c.Set(ctx, "key", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(data) != "payload" {
		t.Errorf("Get = %q, want %q", data, "payload")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expected miss after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete missing key error: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Already-expired entry reads as a miss
	if err := c.Set(ctx, "key", []byte("stale"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expired entry should miss")
	}

	// Zero TTL stores without expiration
	if err := c.Set(ctx, "forever", []byte("fresh"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero-TTL entry should hit")
	}
}

func TestRetryable(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should be nil")
	}

	base := errors.New("boom")
	wrapped := Retryable(base)
	if !IsRetryable(wrapped) {
		t.Error("wrapped error should be retryable")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to the base error")
	}
	if IsRetryable(base) {
		t.Error("plain error should not be retryable")
	}
}

func TestRetryWithBackoffNonRetryable(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		return errors.New("fatal")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("non-retryable error should not retry, got %d calls", calls)
	}
}
