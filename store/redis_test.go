package store

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, rdb
}

func TestRedisStoreLookup(t *testing.T) {
	mr, rdb := newTestRedis(t)
	if err := mr.Set("routerconsole.admin.shash", "abc"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	s := NewRedisStore(rdb, "")

	val, ok, err := s.Lookup(context.Background(), "routerconsole.admin.shash")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if !ok || val != "abc" {
		t.Fatalf("Lookup = (%q, %v), want (\"abc\", true)", val, ok)
	}
}

func TestRedisStoreAbsentKey(t *testing.T) {
	_, rdb := newTestRedis(t)
	s := NewRedisStore(rdb, "")

	_, ok, err := s.Lookup(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if ok {
		t.Fatal("expected absent key to report ok=false, not an error")
	}
}

func TestRedisStorePrefix(t *testing.T) {
	mr, rdb := newTestRedis(t)
	if err := mr.Set("cfg:console.password", "pw"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	s := NewRedisStore(rdb, "cfg:")

	val, ok, err := s.Lookup(context.Background(), "console.password")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if !ok || val != "pw" {
		t.Fatalf("Lookup = (%q, %v), want prefixed hit", val, ok)
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr, rdb := newTestRedis(t)
	s := NewRedisStore(rdb, "")

	mr.Close()

	_, ok, err := s.Lookup(context.Background(), "any")
	if ok {
		t.Fatal("expected no value from unreachable backend")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
