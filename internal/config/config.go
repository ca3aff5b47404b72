// Package config defines the simulation configuration file: which parameter
// set and weather series to use, and the sites to simulate.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/ecoclim/spitfire/pkg/fireweather"
)

// Config is the base configuration object.
type Config struct {
	ParamsFile  string       `yaml:"params-file"`
	WeatherFile string       `yaml:"weather-file"`
	OutputFile  string       `yaml:"output-file,omitempty"`
	Index       string       `yaml:"fire-weather-index,omitempty"`
	Debug       bool         `yaml:"debug,omitempty"`
	Sites       []SiteConfig `yaml:"sites"`
}

// SiteConfig describes one simulated site: its fuel model and land cover.
type SiteConfig struct {
	Name          string  `yaml:"name"`
	FuelModel     int     `yaml:"fuel-model"`
	TreeFraction  float64 `yaml:"tree-fraction,omitempty"`
	GrassFraction float64 `yaml:"grass-fraction,omitempty"`
	BareFraction  float64 `yaml:"bare-fraction,omitempty"`
	Ignitions     float64 `yaml:"ignitions"`
}

// NewConfig creates a new config object from the given filename.
func NewConfig(filename string) (Config, error) {
	cfgFile, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	c := Config{}
	if err := yaml.Unmarshal(cfgFile, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", filename, err)
	}
	if c.Index == "" {
		c.Index = string(fireweather.KindNesterov)
	}
	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", filename, err)
	}
	return c, nil
}

func (c Config) validate() error {
	if c.ParamsFile == "" {
		return fmt.Errorf("params-file is required")
	}
	if c.WeatherFile == "" {
		return fmt.Errorf("weather-file is required")
	}
	if len(c.Sites) == 0 {
		return fmt.Errorf("at least one site is required")
	}
	for i, site := range c.Sites {
		if site.Name == "" {
			return fmt.Errorf("site %d: name is required", i)
		}
		if site.Ignitions < 0 {
			return fmt.Errorf("site %q: ignitions must be non-negative", site.Name)
		}
		for _, frac := range []struct {
			name  string
			value float64
		}{
			{"tree-fraction", site.TreeFraction},
			{"grass-fraction", site.GrassFraction},
			{"bare-fraction", site.BareFraction},
		} {
			if frac.value < 0.0 || frac.value > 1.0 {
				return fmt.Errorf("site %q: %s must be in [0,1]", site.Name, frac.name)
			}
		}
		sum := site.TreeFraction + site.GrassFraction + site.BareFraction
		if math.Abs(sum-1.0) > 1e-6 {
			return fmt.Errorf("site %q: cover fractions sum to %g, want 1", site.Name, sum)
		}
	}
	return nil
}
