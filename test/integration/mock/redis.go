package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis starts an in-process Redis server and returns a client
// connected to it.
func NewRedis() *redis.Client {
	if redisConn == nil {
		redisOnce.Do(func() {
			redisConn = openRedisConn()
		})
	}
	return redisConn
}

func openRedisConn() *redis.Client {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(&redis.Options{
		Addr: miniRedis.Addr(),
	})
}

// ClearRedis removes all keys, including blacklisted access tokens.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
