package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autofixpro/workshop-system/internal/api/metrics"
	"github.com/autofixpro/workshop-system/internal/core/domain"
	"github.com/autofixpro/workshop-system/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// RedisConfig captures the settings for the redis mirror backend.
type RedisConfig struct {
	Addr    string
	DB      int
	Key     string
	Timeout time.Duration
}

// RedisMirror stores the snapshot blob under one fixed redis key. It serves
// deployments where several instances share a mirror; the contract is
// identical to the file backend.
type RedisMirror struct {
	client *redis.Client
	key    string
}

// ConnectRedis initialises a redis client, validates connectivity with a
// ping, and returns the mirror. A default timeout is applied when none is
// provided.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*RedisMirror, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisMirror{client: client, key: cfg.Key}, nil
}

// Client exposes the underlying connection for readiness probes.
func (m *RedisMirror) Client() *redis.Client { return m.client }

func (m *RedisMirror) Close() error { return m.client.Close() }

func (m *RedisMirror) Load(ctx context.Context) (*domain.Snapshot, error) {
	raw, err := m.client.Get(ctx, m.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("mirror get: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("mirror decode: %w", err)
	}
	return &snap, nil
}

func (m *RedisMirror) Save(ctx context.Context, snap domain.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return countSave(fmt.Errorf("mirror encode: %w", err))
	}
	return countSave(m.client.Set(ctx, m.key, raw, 0).Err())
}

func (m *RedisMirror) Clear(ctx context.Context) error {
	return m.client.Del(ctx, m.key).Err()
}

func countSave(err error) error {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.MirrorWritesTotal.WithLabelValues(outcome).Inc()
	return err
}
