package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// loadDotEnv loads a .env file from the working directory once per
// process. A missing file is not an error; explicit environment
// variables always win over file values.
var loadDotEnv = sync.OnceFunc(func() {
	_ = godotenv.Load()
})

// Load populates cfg from environment variables according to its
// `env` struct tags. A .env file in the working directory is loaded
// first, if present.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}
	loadDotEnv()
	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, fmt.Errorf("%T: %w", cfg, err))
	}
	return nil
}

// MustLoad is like Load but panics on error. Intended for program
// startup where a bad environment should abort immediately.
func MustLoad[T any](cfg *T) *T {
	if err := Load(cfg); err != nil {
		panic(err)
	}
	return cfg
}
