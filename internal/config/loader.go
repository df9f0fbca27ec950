package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if HIRESIM_CONFIG is set
//  3. env (prefix HIRESIM_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("HIRESIM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: HIRESIM_SEED, HIRESIM_TARGET_SCORE, ...
	// Map env keys like HIRESIM_TARGET_SCORE -> target_score (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("HIRESIM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "hiresim_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Basic validation; domain constructors check the rest.
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive", ErrInvalidConfig)
	}
	if cfg.TargetScore < 1 || cfg.TargetScore > 100 {
		return nil, fmt.Errorf("%w: target_score must be within [1, 100]", ErrInvalidConfig)
	}
	if cfg.MaxCandidates <= 0 {
		return nil, fmt.Errorf("%w: max_candidates must be positive", ErrInvalidConfig)
	}
	if cfg.Tolerance < 0 {
		return nil, fmt.Errorf("%w: tolerance must not be negative", ErrInvalidConfig)
	}
	if cfg.Strategy == "" {
		return nil, fmt.Errorf("%w: strategy must not be empty", ErrInvalidConfig)
	}
	return &cfg, nil
}
