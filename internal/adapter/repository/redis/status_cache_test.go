package redis

import (
	"context"
	"testing"
	"time"
)

func TestStatusCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewStatusCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "qs:co-1:cust-1:standard", []byte(`{"status":"green"}`), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "qs:co-1:cust-1:standard")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(val) != `{"status":"green"}` {
		t.Fatalf("expected cached payload, got %s", val)
	}
}

func TestStatusCacheMissIsNotAnError(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewStatusCache(client)

	val, err := cache.Get(context.Background(), "qs:co-1:missing:standard")
	if err != nil {
		t.Fatalf("expected nil error on miss, got %v", err)
	}
	if val != nil {
		t.Fatalf("expected nil value on miss, got %s", val)
	}
}

func TestStatusCacheExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewStatusCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "qs:co-1:cust-1:extended", []byte("x"), 30*time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(time.Minute)

	val, err := cache.Get(ctx, "qs:co-1:cust-1:extended")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != nil {
		t.Fatalf("expected expired key to read as miss, got %s", val)
	}
}

func TestStatusCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewStatusCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "qs:co-1:cust-1:standard", []byte("x"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Delete(ctx, "qs:co-1:cust-1:standard"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if val, _ := cache.Get(ctx, "qs:co-1:cust-1:standard"); val != nil {
		t.Fatalf("expected deleted key to read as miss")
	}
}
