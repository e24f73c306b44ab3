// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads optional .env files, with
// github.com/caarlos0/env/v11, which fills tagged structs:
//
//	type Config struct {
//	    Env       string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Inventory int    `env:"DISPENSER_INVENTORY" envDefault:"1"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Every struct type is parsed once per process and cached by type, so
// packages can call Load for the same type without re-reading the
// environment. LoadEnv pulls in extra .env files and resets the cache;
// ResetCache alone is meant for tests.
//
// # Error Handling
//
// Parse failures (missing required variables, malformed numbers) are
// reported as ErrParsingConfig joined with the underlying env error, so
// both errors.Is(err, config.ErrParsingConfig) and the env package's own
// error types keep working. A nil target yields ErrNilPointer.
package config
