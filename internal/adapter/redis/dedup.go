// Package redis provides the Redis-backed reminder deduplication store.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/library-backend/internal/config"
)

const reminderKeyPrefix = "library:reminder:"

// Client wraps a go-redis client.
type Client struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewClient connects to Redis and verifies the connection with PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Client{client: client, ttl: cfg.ReminderTTL}, nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// MarkReminded records that the reminder for a borrowing's due day has been
// sent. It returns false when another sweep already claimed it.
func (c *Client) MarkReminded(ctx context.Context, borrowingID uuid.UUID, day time.Time) (bool, error) {
	key := reminderKey(borrowingID, day)

	ok, err := c.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339Nano), c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	return ok, nil
}

// ReleaseReminded drops a claim made by MarkReminded so a later sweep can
// retry a reminder that was not delivered.
func (c *Client) ReleaseReminded(ctx context.Context, borrowingID uuid.UUID, day time.Time) error {
	key := reminderKey(borrowingID, day)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func reminderKey(borrowingID uuid.UUID, day time.Time) string {
	return reminderKeyPrefix + borrowingID.String() + ":" + day.UTC().Format(time.DateOnly)
}
