package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gridtopo/gridtopo/rules"
)

// Config is the full set of §6 configuration keys.
type Config struct {
	Radius rules.RadiusScale `yaml:"radius"`

	MaxBTDistanceM    float64 `yaml:"max_bt_distance_m"`
	MaxDepth          int     `yaml:"max_depth"`
	BridgeCapM        float64 `yaml:"bridge_cap_m"`
	MaxHops           int     `yaml:"max_hops"`
	ExplorationLimit  int     `yaml:"exploration_limit"`
	WorkerCount       int     `yaml:"worker_count"`

	RulesPath string `yaml:"rules_path"`
}

// Default returns the configuration the rest of the core falls back to when
// no file or environment override is present.
func Default() Config {
	return Config{
		Radius:           rules.RadiusScale{Close: 1, Mid: 3, Far: 10},
		MaxBTDistanceM:   10000,
		MaxDepth:         10,
		BridgeCapM:       2000,
		MaxHops:          3,
		ExplorationLimit: 200000,
		WorkerCount:      0,
	}
}

// Load reads a YAML configuration file, falling back to Default for any
// field the file does not set, then applies environment-variable overrides
// via ApplyEnv.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		ApplyEnv(&cfg)

		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ApplyEnv(&cfg)

			return cfg, nil
		}

		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	ApplyEnv(&cfg)

	return cfg, nil
}

// envOverrides maps each environment variable this core recognizes to the
// setter that applies its parsed value to a Config.
var envOverrides = map[string]func(*Config, string) error{
	"GRIDTOPO_RADIUS_CLOSE":      floatSetter(func(c *Config) *float64 { return &c.Radius.Close }),
	"GRIDTOPO_RADIUS_MID":        floatSetter(func(c *Config) *float64 { return &c.Radius.Mid }),
	"GRIDTOPO_RADIUS_FAR":        floatSetter(func(c *Config) *float64 { return &c.Radius.Far }),
	"GRIDTOPO_MAX_BT_DISTANCE_M": floatSetter(func(c *Config) *float64 { return &c.MaxBTDistanceM }),
	"GRIDTOPO_BRIDGE_CAP_M":      floatSetter(func(c *Config) *float64 { return &c.BridgeCapM }),
	"GRIDTOPO_MAX_DEPTH":         intSetter(func(c *Config) *int { return &c.MaxDepth }),
	"GRIDTOPO_MAX_HOPS":          intSetter(func(c *Config) *int { return &c.MaxHops }),
	"GRIDTOPO_EXPLORATION_LIMIT": intSetter(func(c *Config) *int { return &c.ExplorationLimit }),
	"GRIDTOPO_WORKER_COUNT":      intSetter(func(c *Config) *int { return &c.WorkerCount }),
}

func floatSetter(field func(*Config) *float64) func(*Config, string) error {
	return func(c *Config, raw string) error {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*field(c) = v

		return nil
	}
}

func intSetter(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*field(c) = v

		return nil
	}
}

// ApplyEnv overlays any recognized GRIDTOPO_* environment variable onto cfg.
// Unset variables leave the corresponding field untouched; malformed values
// are ignored rather than treated as fatal, since a bad override should not
// crash an otherwise-valid file-based configuration.
func ApplyEnv(cfg *Config) {
	for key, setter := range envOverrides {
		raw, ok := os.LookupEnv(key)
		if !ok || raw == "" {
			continue
		}
		_ = setter(cfg, raw)
	}
}
