package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/wardrobe/pkg/config"
)

const (
	defaultPoolSize  = 10
	redisMeterScope  = "github.com/ghuser/wardrobe/pkg/cache"
	redisCommandsCtr = "cache.redis.commands"
)

// RedisClient wraps redis.Client with the item cache's pool settings and
// per-command metrics.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient parses cfg.RedisURL, applies pool settings, installs the
// metrics hook and verifies connectivity via Ping.
func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	rdb.AddHook(newMetricsHook(otel.GetMeterProvider()))

	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisClient{client: rdb}, nil
}

// redisOptions builds client options from config. The cache serves small
// hashes, so reads and writes time out quickly and the read repository
// falls back to Postgres instead of waiting.
func redisOptions(cfg *config.Config) (*redis.Options, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	opts.PoolSize = cfg.RedisPoolSize
	if opts.PoolSize <= 0 {
		opts.PoolSize = defaultPoolSize
	}
	opts.MinIdleConns = max(1, opts.PoolSize/5)
	opts.ClientName = cfg.ServiceName

	opts.MaxRetries = 2
	opts.DialTimeout = 2 * time.Second
	opts.ReadTimeout = 500 * time.Millisecond
	opts.WriteTimeout = 500 * time.Millisecond
	opts.PoolTimeout = time.Second
	return opts, nil
}

// Ping checks the Redis connection health.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close gracefully shuts down the Redis connection pool.
func (r *RedisClient) Close() error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}

// Client returns the underlying redis.Client for direct use.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}

// metricsHook counts commands by name and status: "ok", "miss" for
// redis.Nil, or "error". Pipelines count each queued command.
type metricsHook struct {
	commands metric.Int64Counter
}

func newMetricsHook(mp metric.MeterProvider) *metricsHook {
	counter, err := mp.Meter(redisMeterScope).Int64Counter(
		redisCommandsCtr,
		metric.WithDescription("Redis commands issued by the item cache"),
		metric.WithUnit("{command}"),
	)
	if err != nil {
		otel.Handle(err)
		return &metricsHook{}
	}
	return &metricsHook{commands: counter}
}

func (h *metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		h.record(ctx, cmd)
		return err
	}
}

func (h *metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		for _, cmd := range cmds {
			h.record(ctx, cmd)
		}
		return err
	}
}

func (h *metricsHook) record(ctx context.Context, cmd redis.Cmder) {
	if h.commands == nil {
		return
	}
	h.commands.Add(ctx, 1, metric.WithAttributes(
		attribute.String("command", strings.ToLower(cmd.Name())),
		attribute.String("status", commandStatus(cmd.Err())),
	))
}

func commandStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, redis.Nil):
		return "miss"
	default:
		return "error"
	}
}
