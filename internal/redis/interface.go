package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client is the Redis client the repositories depend on. Single node,
// cluster and sentinel clients all satisfy it.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for transactional writes
type Pipeliner interface {
	redis.Pipeliner
}
