// Package config loads typed application configuration from environment
// variables and .env files.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tag parsing. Each configuration struct
// type is parsed once and cached for the lifetime of the process, so packages
// can call Load freely:
//
//	var cfg mailer.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// LoadEnv reads explicit .env files before the first Load. Reload and
// ResetCache drop cached values, which is mostly useful in tests.
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
