package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths and translates it into
	// the format-agnostic model. Later paths override scalar settings of
	// earlier ones; patterns and sources are appended in order.
	Load(ctx context.Context, paths ...string) (*Plugin, error)
}
