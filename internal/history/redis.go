package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKey = "predictor:history"

// RedisMedium persists the snapshot as a single JSON value under one key.
type RedisMedium struct {
	client *redis.Client
}

func NewRedisMedium(ctx context.Context, addr string) (*RedisMedium, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisMedium{client: client}, nil
}

func (m *RedisMedium) Load(ctx context.Context) (*Snapshot, error) {
	data, err := m.client.Get(ctx, redisKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}

func (m *RedisMedium) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := m.client.Set(ctx, redisKey, data, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (m *RedisMedium) Close() error {
	return m.client.Close()
}
