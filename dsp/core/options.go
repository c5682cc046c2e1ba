package core

// Config defines construction-time settings shared by the buffered filters.
type Config struct {
	// Capacity is the upper bound for the filter order. The backing
	// buffers are allocated once with this length.
	Capacity int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig(capacity int) Config {
	return Config{Capacity: capacity}
}

// WithCapacity sets the maximum filter order.
func WithCapacity(capacity int) Option {
	return func(cfg *Config) {
		if capacity > 0 {
			cfg.Capacity = capacity
		}
	}
}

// ApplyOptions applies zero or more options to the default config built
// from defaultCapacity.
func ApplyOptions(defaultCapacity int, opts ...Option) Config {
	cfg := DefaultConfig(defaultCapacity)
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
