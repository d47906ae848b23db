package internal

import "github.com/evensrud/daybook/internal/vault"

// Option is a functional option for configuring serve mode.
type Option func(*application)

type application struct {
	config *Config
	store  *vault.Store
}

// WithConfig sets the serve configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithStore sets the vault store to serve.
func WithStore(store *vault.Store) Option {
	return func(a *application) {
		a.store = store
	}
}
