package database

import "github.com/redis/go-redis/v9"

// Redis wraps the redis client used for session storage
type Redis struct {
	Client *redis.Client
}

// NewRedis creates a redis client
func NewRedis(addr, password string, db int) *Redis {
	return &Redis{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}
