// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "log/slog"

// Option configures an Election at construction time.
type Option func(*config)

type config struct {
	source Source
	logger *slog.Logger
}

// WithSource injects the random source used for the grade-exhaustion
// draw. Tests pass a seeded source for reproducible draws; the default
// is CryptoSource.
func WithSource(src Source) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithLogger routes orchestration events to the given structured logger
// instead of slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.logger = log
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		source: CryptoSource(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.source == nil {
		cfg.source = CryptoSource()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}
