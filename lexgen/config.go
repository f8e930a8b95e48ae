package lexgen

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Config configures the generator facade's diagnostics.
type Config struct {
	// Logger receives structured diagnostics during DFA construction —
	// notably the ambiguous-accept-set warning from §4.3 pass 1.
	Logger *logrus.Logger
}

// DefaultConfig returns a Config with a discard logger, so library
// consumers never get unwanted stderr output from Build unless they
// opt in with WithLogger.
func DefaultConfig() Config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Config{Logger: l}
}

// GeneratorOption customizes a Config produced by DefaultConfig.
type GeneratorOption func(*Config)

// WithLogger overrides the discard-default logger.
func WithLogger(logger *logrus.Logger) GeneratorOption {
	return func(c *Config) { c.Logger = logger }
}
