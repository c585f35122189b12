// Package redis bootstraps the Redis connection used by the cache-backed
// user record store. Configuration comes from the environment and Connect
// retries briefly so a cold Redis does not kill the process at startup.
//
// Usage:
//
//	var cfg redis.Config
//	// populate cfg from the environment, see pkg/config
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := redisstore.New(client)
package redis
