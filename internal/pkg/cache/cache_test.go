package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, "test"), mr
}

func TestSetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	in := payload{Name: "algebra", Count: 3}
	if err := c.Set(ctx, "page:1", in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out payload
	if err := c.Get(ctx, "page:1", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out != in {
		t.Errorf("Get = %+v, want %+v", out, in)
	}
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var out payload
	err := c.Get(context.Background(), "missing", &out)
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
}

func TestDelete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "page:1", payload{Name: "x"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "page:1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var out payload
	if err := c.Get(ctx, "page:1", &out); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after Delete = %v, want ErrCacheMiss", err)
	}
}

func TestInvalidateAll(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	for _, key := range []string{"page:1", "page:2", "page:3"} {
		if err := c.Set(ctx, key, payload{Name: key}); err != nil {
			t.Fatalf("Set(%q): %v", key, err)
		}
	}
	// Keys outside the prefix must survive invalidation.
	mr.Set("other:page:1", "kept")

	if err := c.InvalidateAll(ctx); err != nil {
		t.Fatalf("InvalidateAll: %v", err)
	}

	for _, key := range []string{"page:1", "page:2", "page:3"} {
		var out payload
		if err := c.Get(ctx, key, &out); !errors.Is(err, ErrCacheMiss) {
			t.Errorf("Get(%q) after InvalidateAll = %v, want ErrCacheMiss", key, err)
		}
	}
	if !mr.Exists("other:page:1") {
		t.Error("InvalidateAll removed a key outside its prefix")
	}
}

func TestNilClient(t *testing.T) {
	c := New(nil, "test")
	ctx := context.Background()

	var out payload
	if err := c.Get(ctx, "k", &out); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Get = %v, want ErrCacheNotAvailable", err)
	}
	if err := c.Set(ctx, "k", payload{}); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Set = %v, want ErrCacheNotAvailable", err)
	}
	if err := c.Delete(ctx, "k"); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Delete = %v, want ErrCacheNotAvailable", err)
	}
	if err := c.InvalidateAll(ctx); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("InvalidateAll = %v, want ErrCacheNotAvailable", err)
	}
}
