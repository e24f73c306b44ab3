package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds one parsed configuration type. once guards the parse so
// concurrent first loads of the same type parse the environment a single time.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cacheMu sync.Mutex
	cache   = map[reflect.Type]*entry{}

	dotenvOnce sync.Once
)

// Load parses environment variables into v according to its `env` struct tags.
//
// The first call in the process reads an optional .env file from the working
// directory. Each configuration type is parsed once; later calls for the same
// type copy the cached value into v, even if the environment changed since.
// A failed parse is not cached, so the next call retries.
//
//	type Dispenser struct {
//		Inventory int `env:"DISPENSER_INVENTORY" envDefault:"1"`
//	}
//
//	var cfg Dispenser
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// A missing .env is the normal case outside local development.
		_ = godotenv.Load()
	})

	e := lookup(reflect.TypeFor[T]())
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		forget(reflect.TypeFor[T](), e)
		return e.err
	}

	cached, ok := e.value.(T)
	if !ok {
		return fmt.Errorf("%w: %s", ErrConfigNotLoaded, reflect.TypeFor[T]())
	}
	*v = cached
	return nil
}

// MustLoad is like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. Earlier files win over later ones.
// It clears the cache so the next Load sees the new values.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	ResetCache()
	return nil
}

// ResetCache drops every cached configuration. Tests use it between cases
// that change the environment.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}

func lookup(t reflect.Type) *entry {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	e, ok := cache[t]
	if !ok {
		e = &entry{}
		cache[t] = e
	}
	return e
}

func forget(t reflect.Type, e *entry) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cache[t] == e {
		delete(cache, t)
	}
}
