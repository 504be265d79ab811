package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache holds one parsed value per configuration struct type.
	cache sync.Map // map[reflect.Type]any

	defaultEnvOnce sync.Once
)

// LoadEnv loads one or more .env files into the process environment without
// overriding variables that are already set. With no arguments it loads
// ".env" from the working directory.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v using `env` struct tags.
// Each configuration type is parsed once; later calls copy the cached value.
// The default .env file is loaded on first use when it exists.
//
//	type MailerConfig struct {
//		Transport string `env:"MAILER_TRANSPORT" envDefault:"file"`
//		From      string `env:"MAILER_FROM,required"`
//	}
//
//	var cfg MailerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	actual, _ := cache.LoadOrStore(key, parsed)
	*v = actual.(T)
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reload discards the cached value for T and parses the environment again.
func Reload[T any](v *T) error {
	cache.Delete(reflect.TypeFor[T]())
	return Load(v)
}

// ResetCache clears every cached configuration.
func ResetCache() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}
