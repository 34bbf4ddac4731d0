package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the optional cache backing share hash lookups on the
// public recall page. Callers run without it when the connection fails;
// the database stays the source of truth either way.
func InitRedis(addr string, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
