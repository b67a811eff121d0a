// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/caarlos0/env/v11` for struct parsing and
// `github.com/joho/godotenv` for optional .env files:
//
//   - Load parses the environment into any struct with `env` tags and caches
//     the result per type, so repeated calls are cheap.
//   - MustLoad panics on failure, for configuration a program cannot start without.
//   - LoadEnv reads one or more .env files before parsing.
//   - ForceReload and ResetCache drop cached values, mostly for tests.
//
// # Usage
//
//	type Config struct {
//	    Env      string `env:"SIGNUP_ENV" envDefault:"development"`
//	    Timezone string `env:"SIGNUP_TIMEZONE" envDefault:"Local"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors can be compared with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
