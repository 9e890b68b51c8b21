package core

import "go.uber.org/zap"

// Option configures a render pass.
type Option func(*renderConfig)

type renderConfig struct {
	logger          *zap.Logger
	trend           bool   // add trend overlays to temporal charts
	defaultVariable string // used when an envelope names no variable
}

// WithLogger sets the logger used for debug tracing of dropped data.
func WithLogger(logger *zap.Logger) Option {
	return func(c *renderConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTrend toggles trend overlays on temporal charts. They are on by default.
func WithTrend(enabled bool) Option {
	return func(c *renderConfig) {
		c.trend = enabled
	}
}

// WithDefaultVariable sets the property charted when an envelope's
// metadata does not name one.
func WithDefaultVariable(variable string) Option {
	return func(c *renderConfig) {
		c.defaultVariable = variable
	}
}

func applyOptions(opts []Option) *renderConfig {
	cfg := &renderConfig{
		logger: zap.NewNop(),
		trend:  true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// variableFor resolves the charted property for an envelope.
func (c *renderConfig) variableFor(meta string) string {
	if meta != "" {
		return meta
	}
	return c.defaultVariable
}
