package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

// redisTestCache connects to the Redis named by MANARAH_TEST_REDIS_URL,
// or skips the test when none is configured.
func redisTestCache(t *testing.T, prefix string) *RedisCache {
	t.Helper()
	url := os.Getenv("MANARAH_TEST_REDIS_URL")
	if url == "" {
		t.Skip("MANARAH_TEST_REDIS_URL not set")
	}

	c, err := NewRedisCacheFromURL(url, prefix, time.Minute)
	if err != nil {
		t.Fatalf("connect to redis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCacheRoundTrip(t *testing.T) {
	c := redisTestCache(t, "test:")
	ctx := context.Background()
	_ = c.Clear(ctx)

	if err := c.Set(ctx, "api:faqs", []byte(`{"success":true}`), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, "api:faqs")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"success":true}` {
		t.Errorf("Get = %s", got)
	}

	if has, err := c.Has(ctx, "api:faqs"); err != nil || !has {
		t.Errorf("Has = %v, %v", has, err)
	}

	if err := c.Delete(ctx, "api:faqs"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, "api:faqs"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after delete = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCacheMiss(t *testing.T) {
	c := redisTestCache(t, "test:")

	if _, err := c.Get(context.Background(), "never-set"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCacheTTL(t *testing.T) {
	c := redisTestCache(t, "test:")
	ctx := context.Background()

	if err := c.Set(ctx, "short", []byte("x"), 100*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := c.Get(ctx, "short"); err != nil {
		t.Fatalf("Get before expiry: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	if _, err := c.Get(ctx, "short"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after expiry = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCacheClear(t *testing.T) {
	c := redisTestCache(t, "clear-test:")
	ctx := context.Background()

	keys := []string{"api:faqs", "api:events", "api:testimonials"}
	for _, key := range keys {
		if err := c.Set(ctx, key, []byte("x"), time.Minute); err != nil {
			t.Fatalf("Set %s: %v", key, err)
		}
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, key := range keys {
		if _, err := c.Get(ctx, key); !errors.Is(err, ErrCacheMiss) {
			t.Errorf("%s survived Clear", key)
		}
	}
}

func TestRedisCacheDeleteByPrefix(t *testing.T) {
	c := redisTestCache(t, "prefix-test:")
	ctx := context.Background()
	_ = c.Clear(ctx)

	_ = c.Set(ctx, "api:faqs", []byte("x"), time.Minute)
	_ = c.Set(ctx, "api:umrah-packages", []byte("x"), time.Minute)
	_ = c.Set(ctx, "session:abc", []byte("x"), time.Minute)

	if err := c.DeleteByPrefix(ctx, "api:"); err != nil {
		t.Fatalf("DeleteByPrefix: %v", err)
	}

	for _, key := range []string{"api:faqs", "api:umrah-packages"} {
		if _, err := c.Get(ctx, key); !errors.Is(err, ErrCacheMiss) {
			t.Errorf("%s survived the prefix flush", key)
		}
	}
	if _, err := c.Get(ctx, "session:abc"); err != nil {
		t.Errorf("unrelated key flushed: %v", err)
	}
}

func TestRedisCacheStats(t *testing.T) {
	c := redisTestCache(t, "stats-test:")
	ctx := context.Background()
	_ = c.Clear(ctx)
	c.ResetStats()

	_ = c.Set(ctx, "a", []byte("1"), time.Minute)
	_ = c.Set(ctx, "b", []byte("2"), time.Minute)
	_, _ = c.Get(ctx, "a")
	_, _ = c.Get(ctx, "a")
	_, _ = c.Get(ctx, "missing")

	stats := c.Stats()
	if stats.Sets != 2 || stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("Stats = %+v", stats)
	}

	wantRate := float64(2) / 3 * 100
	if stats.HitRate < wantRate-1 || stats.HitRate > wantRate+1 {
		t.Errorf("HitRate = %.2f, want ~%.2f", stats.HitRate, wantRate)
	}
}

func TestRedisCachePing(t *testing.T) {
	c := redisTestCache(t, "ping-test:")

	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestRedisCacheClose(t *testing.T) {
	c := redisTestCache(t, "close-test:")
	ctx := context.Background()

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Get after Close = %v, want ErrCacheClosed", err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Set after Close = %v, want ErrCacheClosed", err)
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCacheFromURL("not-a-url", "test:", time.Minute); err == nil {
		t.Error("expected error for malformed URL")
	}
	if _, err := NewRedisCacheFromURL("", "test:", time.Minute); err == nil {
		t.Error("expected error for empty URL")
	}
}

func TestNewRedisUnreachable(t *testing.T) {
	_, err := New(Config{
		RedisURL:   "redis://localhost:63999/0",
		DefaultTTL: time.Minute,
	})
	if err == nil {
		t.Error("expected error when redis is unreachable")
	}
}
