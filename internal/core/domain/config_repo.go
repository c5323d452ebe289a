package domain

import "context"

type ConfigRepository interface {
	// Get returns nil if the config has not been created yet.
	Get(ctx context.Context) (*Config, error)
	// Add fails with ErrConfigExists if a config is already stored.
	Add(ctx context.Context, config Config) error
	// IncrementNonce bumps the next nonce and returns the value it had before.
	// It fails with ErrConfigNotFound if no config is stored.
	IncrementNonce(ctx context.Context) (uint64, error)
	Close()
}
