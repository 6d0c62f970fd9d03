package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Prefix namespaces every environment variable read by portfolio commands.
const Prefix = "PORTFOLIO_"

// ParseEnv loads configuration from environment variables.
//
// Struct tags name variables without the shared prefix; `env:"LOG_LEVEL"`
// reads PORTFOLIO_LOG_LEVEL.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: Prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
