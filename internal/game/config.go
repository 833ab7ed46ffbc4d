package game

import (
	"fmt"
	"strconv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed         = "FIELDSIM_SEED"
	EnvFPS          = "FIELDSIM_FPS"
	EnvBehaviorFile = "FIELDSIM_BEHAVIOR_FILE"
	EnvLogFile      = "FIELDSIM_LOG_FILE"
)

const (
	defaultFPS = 30
	maxFPS     = 240
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible fields.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// FPS is the number of frames simulated and drawn per second.
	FPS int
	// BehaviorFile optionally overrides the embedded tunables and is
	// reloaded whenever it changes on disk.
	BehaviorFile string
	// LogFile receives structured logs. Empty discards them.
	LogFile string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{FPS: defaultFPS}
}

// ConfigFromEnv builds a Config from environment lookups, e.g. os.Getenv.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	if v := getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvFPS, v, err)
		}
		cfg.FPS = fps
	}

	cfg.BehaviorFile = getenv(EnvBehaviorFile)
	cfg.LogFile = getenv(EnvLogFile)

	return cfg, cfg.Validate()
}

// Validate reports configuration values that cannot run.
func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > maxFPS {
		return fmt.Errorf("fps must be within [1,%d], got %d", maxFPS, c.FPS)
	}
	return nil
}
