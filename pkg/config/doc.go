// Package config loads typed configuration structs from the environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: .env
// files feed the process environment, env tags map variables onto struct
// fields, and each struct type is parsed at most once per process with the
// result cached.
//
// Usage:
//
//	var mongoCfg mongo.Config
//	var redisCfg redis.Config
//
//	config.MustLoadEnv()        // optional, loads ./.env
//	config.MustLoad(&mongoCfg)
//	config.MustLoad(&redisCfg)
//
// ResetCache clears the cache between tests that mutate the environment.
package config
