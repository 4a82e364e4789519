package autoalert

import "context"

type ConfigRepository interface {
	// Get returns the single configuration row, creating it with defaults
	// when it does not exist yet.
	Get(ctx context.Context) (*Config, error)
	Update(ctx context.Context, c *Config) error
}
