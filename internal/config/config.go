// Package config overlays yaml overrides onto the built-in tax parameters
// and education cost table. The statutory constants are approximations of a
// national scheme at a point in time; keeping them in configuration lets
// them track legislation without touching the algorithms.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"lifeplan-engine/internal/education"
	"lifeplan-engine/internal/tax"
)

type Config struct {
	Tax       *tax.Params          `mapstructure:"tax"`
	Education *education.CostTable `mapstructure:"education"`
}

// Load returns the defaults overlaid with any values found at path. A
// missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Tax:       tax.DefaultParams(),
		Education: education.DefaultCostTable(),
	}
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
