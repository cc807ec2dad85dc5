package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis starts an embedded Redis server and returns a client bound to it.
// The server is shared across scenarios; flush it between them.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		redisConn = openRedisConn()
	})
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

// ClearRedis drops every key from the embedded server.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
