package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration structs keyed by type name so
// each type is parsed from the environment at most once per process.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded bool
)

// LoadEnv loads one or more .env files into the process environment before
// parsing. A missing file is an error here, unlike the implicit default
// .env load which is best effort.
func LoadEnv(paths ...string) error {
	defaultEnvMu.Lock()
	defaultEnvLoaded = true
	defaultEnvMu.Unlock()

	if len(paths) == 0 {
		_ = godotenv.Load()
		return nil
	}
	return godotenv.Load(paths...)
}

// MustLoadEnv works like LoadEnv but panics if any file cannot be loaded.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load populates the configuration struct from the environment. The first
// call for a given type parses and caches the result; subsequent calls for
// the same type return the cached copy. A default .env file in the working
// directory is loaded once, best effort, before the first parse.
//
// Example:
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvMu.Lock()
	if !defaultEnvLoaded {
		defaultEnvLoaded = true
		_ = godotenv.Load()
	}
	defaultEnvMu.Unlock()

	if v == nil {
		return ErrNilPointer
	}

	typeName := typeNameOf[T]()

	globalCache.mu.RLock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		globalCache.mu.RUnlock()
		return nil
	}
	globalCache.mu.RUnlock()

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}

		globalCache.mu.Lock()
		globalCache.values[typeName] = *v
		globalCache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	// The once already ran and failed in another goroutine.
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics on failure. Intended for
// configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache drops all cached configurations. Intended for tests that
// mutate the process environment between loads.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
	globalCache.mu.Unlock()
}

func typeNameOf[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
