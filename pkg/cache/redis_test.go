package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
)

// newTestConfig returns a config pointing to REDIS_URL env var, falling back to localhost.
func newTestConfig(url string) *config.Config {
	return &config.Config{
		RedisURL:      url,
		RedisPoolSize: 4,
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("not-a-valid-url"))
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestRedisOptions(t *testing.T) {
	cfg := &config.Config{RedisURL: "redis://localhost:6379/2", RedisPoolSize: 20, ServiceName: "wardrobe"}
	opts, err := redisOptions(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.DB != 2 || opts.PoolSize != 20 || opts.MinIdleConns != 4 {
		t.Fatalf("unexpected pool options: db=%d pool=%d idle=%d", opts.DB, opts.PoolSize, opts.MinIdleConns)
	}
	if opts.ClientName != "wardrobe" {
		t.Fatalf("expected client name wardrobe, got %q", opts.ClientName)
	}

	cfg.RedisPoolSize = 0
	opts, _ = redisOptions(cfg)
	if opts.PoolSize != defaultPoolSize || opts.MinIdleConns != 2 {
		t.Fatalf("expected default pool, got pool=%d idle=%d", opts.PoolSize, opts.MinIdleConns)
	}
}

func TestMetricsHook_CountsByStatus(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	hook := newMetricsHook(mp)
	ctx := context.Background()

	process := hook.ProcessHook(func(_ context.Context, cmd redis.Cmder) error {
		cmd.SetErr(redis.Nil)
		return redis.Nil
	})
	if err := process(ctx, redis.NewStringCmd(ctx, "GET", "item:detail:1")); !errors.Is(err, redis.Nil) {
		t.Fatalf("hook must pass the error through, got %v", err)
	}

	pipeline := hook.ProcessPipelineHook(func(_ context.Context, cmds []redis.Cmder) error {
		cmds[1].SetErr(errors.New("READONLY"))
		return cmds[1].Err()
	})
	_ = pipeline(ctx, []redis.Cmder{
		redis.NewIntCmd(ctx, "del", "item:detail:1"),
		redis.NewIntCmd(ctx, "hset", "item:detail:1", "name", "Tee"),
	})

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if m.Name != redisCommandsCtr || !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				cmd, _ := dp.Attributes.Value("command")
				status, _ := dp.Attributes.Value("status")
				counts[cmd.AsString()+"/"+status.AsString()] += dp.Value
			}
		}
	}
	want := map[string]int64{"get/miss": 1, "del/ok": 1, "hset/error": 1}
	for k, v := range want {
		if counts[k] != v {
			t.Fatalf("expected %s=%d, got %v", k, v, counts)
		}
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("redis://localhost:19999"))
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

// Integration tests: skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	t.Run("NewRedisClient_Success", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck
	})

	t.Run("Ping_Success", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		if err := rc.Ping(context.Background()); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("Close_Idempotent", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := rc.Close(); err != nil {
			t.Fatalf("first Close failed: %v", err)
		}
	})

	t.Run("Client_NotNil", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		if rc.Client() == nil {
			t.Fatal("expected non-nil underlying client")
		}
	})
}

func TestNewItemCache_DefaultTTL(t *testing.T) {
	if got := NewItemCache(nil, 0).TTL(); got != DefaultItemCacheTTL {
		t.Fatalf("expected default TTL, got %s", got)
	}
	if got := NewItemCache(nil, time.Minute).TTL(); got != time.Minute {
		t.Fatalf("expected 1m TTL, got %s", got)
	}
}

func TestItemCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ctx := context.Background()
	c := NewItemCache(rc, time.Minute)
	const id int64 = 900001
	t.Cleanup(func() { _ = c.Delete(ctx, id) })

	brand := "Uniqlo"
	in := &readmodels.ItemDetail{
		ID:        id,
		Name:      "White T-Shirt",
		Category:  "tops",
		Color:     "white",
		Brand:     &brand,
		CreatedAt: "2024-01-15T10:30:00Z",
		UpdatedAt: "2024-01-15T10:30:00Z",
	}

	t.Run("Get_Miss", func(t *testing.T) {
		_ = c.Delete(ctx, id)
		if _, err := c.Get(ctx, id); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil, got %v", err)
		}
	})

	t.Run("Set_Get_RoundTrip", func(t *testing.T) {
		if err := c.Set(ctx, in); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := c.Get(ctx, id)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Name != in.Name || got.Category != in.Category || got.Color != in.Color {
			t.Fatalf("unexpected detail: %+v", got)
		}
		if got.Brand == nil || *got.Brand != brand {
			t.Fatalf("unexpected brand: %v", got.Brand)
		}
		if got.Description != nil {
			t.Fatalf("expected nil description, got %q", *got.Description)
		}
	})

	t.Run("Set_ClearsDroppedFields", func(t *testing.T) {
		cleared := *in
		cleared.Brand = nil
		if err := c.Set(ctx, &cleared); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := c.Get(ctx, id)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Brand != nil {
			t.Fatalf("expected brand cleared, got %q", *got.Brand)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := c.Delete(ctx, id); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := c.Get(ctx, id); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})
}
