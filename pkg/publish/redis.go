// Package publish mirrors each dashboard view into redis for out-of-process readers.
package publish

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

// RedisPublisher writes under <prefix>:latest (the whole view), <prefix>:status (hash of
// machine id -> displayed status) and announces on the <prefix>:snapshots channel.
type RedisPublisher struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func NewRedisPublisher(client *redis.Client, prefix string) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		prefix: prefix,
		logger: common.GetLoggerWith(common.LoggerNamePublisher, zap.String("publisher", "redis")),
	}
}

func (p *RedisPublisher) LatestKey() string        { return p.prefix + ":latest" }
func (p *RedisPublisher) StatusKey() string        { return p.prefix + ":status" }
func (p *RedisPublisher) SnapshotsChannel() string { return p.prefix + ":snapshots" }

func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func (p *RedisPublisher) Publish(ctx context.Context, view *models.DashboardView) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}

	statuses := make(map[string]any, len(view.Machines))
	for _, m := range view.Machines {
		statuses[m.ID] = string(m.Status)
	}

	_, err = p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, p.LatestKey(), payload, 0)
		if len(statuses) > 0 {
			pipe.Del(ctx, p.StatusKey())
			pipe.HSet(ctx, p.StatusKey(), statuses)
		}
		pipe.Publish(ctx, p.SnapshotsChannel(), payload)
		return nil
	})
	if err != nil {
		p.logger.Error("Failed to publish view", zap.String("snapshot_id", view.Snapshot.ID), zap.Error(err))
		return fmt.Errorf("failed to publish to redis: %w", err)
	}

	p.logger.Debug("Published view", zap.String("snapshot_id", view.Snapshot.ID), zap.Int("bytes", len(payload)))
	return nil
}

// Latest reads back the last published view.
func (p *RedisPublisher) Latest(ctx context.Context) (*models.DashboardView, error) {
	payload, err := p.client.Get(ctx, p.LatestKey()).Bytes()
	if err != nil {
		return nil, err
	}
	var view models.DashboardView
	if err := json.Unmarshal(payload, &view); err != nil {
		return nil, fmt.Errorf("failed to decode latest view: %w", err)
	}
	return &view, nil
}
