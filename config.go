// SPDX-License-Identifier: MIT
// Source: github.com/zabato/berg

package berg

// defaultLookaheadSize is the sensible default for Config.LookaheadSize
// (§6: recognized range ~8..24, default 18).
const defaultLookaheadSize = 18

// Config holds the single recognized tuning knob for the encoder.
type Config struct {
	// LookaheadSize bounds the number of bytes considered for any single
	// match. Larger values let the matcher find longer matches before
	// committing but do not change the wire format. Must be positive;
	// the reference range is ~8..24.
	LookaheadSize int
}

// DefaultConfig returns the reference default configuration.
func DefaultConfig() *Config {
	return &Config{LookaheadSize: defaultLookaheadSize}
}

// resolveConfig returns cfg if non-nil and valid, otherwise DefaultConfig().
func resolveConfig(cfg *Config) *Config {
	if cfg == nil || cfg.LookaheadSize <= 0 {
		return DefaultConfig()
	}
	return cfg
}
