package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ticklist/ticklist/internal/model"
)

const taskListTTL = 5 * time.Minute

// TaskCache caches per-owner task lists in Redis. A nil *TaskCache is a
// no-op, so callers never need to check whether caching is configured.
type TaskCache struct {
	rdb *redis.Client
}

// New connects to Redis at addr. Returns nil (cache disabled) when addr is
// empty or the server is unreachable; a missing cache is never fatal.
func New(addr string) *TaskCache {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	_, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		slog.Warn("redis unreachable, task cache disabled", "error", err, "addr", addr)
		return nil
	}

	slog.Info("task cache connected", "addr", addr)
	return &TaskCache{rdb: rdb}
}

func listKey(userID int64) string {
	return fmt.Sprintf("tasks:user:%d", userID)
}

func (c *TaskCache) Tasks(ctx context.Context, userID int64) ([]*model.Task, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, listKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("task cache read failed", "error", err, "user_id", userID)
		}
		return nil, false
	}

	var tasks []*model.Task
	err = json.Unmarshal(data, &tasks)
	if err != nil {
		slog.Warn("task cache decode failed", "error", err, "user_id", userID)
		return nil, false
	}

	return tasks, true
}

func (c *TaskCache) SetTasks(ctx context.Context, userID int64, tasks []*model.Task) {
	if c == nil {
		return
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		slog.Warn("task cache encode failed", "error", err, "user_id", userID)
		return
	}

	err = c.rdb.Set(ctx, listKey(userID), data, taskListTTL).Err()
	if err != nil {
		slog.Warn("task cache write failed", "error", err, "user_id", userID)
	}
}

// Invalidate drops the cached list for an owner. Called after every mutation.
func (c *TaskCache) Invalidate(ctx context.Context, userID int64) {
	if c == nil {
		return
	}

	err := c.rdb.Del(ctx, listKey(userID)).Err()
	if err != nil {
		slog.Warn("task cache invalidate failed", "error", err, "user_id", userID)
	}
}

func (c *TaskCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
