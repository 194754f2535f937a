// Package config loads this server's environment-driven startup
// configuration: the runtime environment, log verbosity, and bind port.
// The upstream resolver address is deliberately not part of this struct;
// it comes from the CLI (internal/dns/cli), since it is the one piece of
// configuration an operator typically wants to override per invocation
// rather than per environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod". It selects
	// the logging encoder: human-readable for dev, structured JSON for
	// prod.
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Port is the UDP port the DNS server binds to.
	Port int `koanf:"port" validate:"required,gte=1,lt=65536"`
}

// DEFAULT_APP_CONFIG is applied before environment variables are loaded,
// so any variable the operator doesn't set falls back to these values.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:      "prod",
	LogLevel: "info",
	Port:     2053,
}

// defaultLoader loads DEFAULT_APP_CONFIG into k. It is a var so tests can
// substitute a failing loader.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// envLoader loads environment variables with the "DNS_" prefix, lowercased
// and stripped of that prefix. Defined as a var so tests can substitute a
// different source without touching the real process environment.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DNS_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "DNS_")), value
		},
	}), nil)
}

// Load parses environment variables into an AppConfig, applying defaults
// first and validating the result before returning it.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading config defaults: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
