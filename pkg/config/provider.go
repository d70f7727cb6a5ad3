// Package config loads site-specific degree-day melt parameters from YAML files
// or SQLite databases.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/chrissnell/snowmelt/pkg/melt"
)

var (
	ErrSiteNotFound       = errors.New("site not found")
	ErrMissingName        = errors.New("site name is required")
	ErrDuplicateSite      = errors.New("duplicate site name")
	ErrNonFinite          = errors.New("value must be finite")
	ErrUnsupportedBackend = errors.New("unsupported configuration backend")
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get the melt parameter sets for all sites
	GetSites() ([]SiteData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Sites []SiteData `json:"sites"`
}

// SiteData holds the degree-day coefficients for one site or snowpack.
// ThresholdTemp is 0 °C unless configured otherwise.
type SiteData struct {
	Name            string  `json:"name"`
	DegreeDayFactor float64 `json:"degree_day_factor"`
	ThresholdTemp   float64 `json:"threshold_temp,omitempty"`
}

// Params converts the site configuration into melt model parameters
func (s SiteData) Params() melt.Params {
	return melt.Params{
		Factor:    s.DegreeDayFactor,
		Threshold: s.ThresholdTemp,
	}
}

// Site returns the configuration for the named site
func (c *ConfigData) Site(name string) (SiteData, error) {
	for _, s := range c.Sites {
		if s.Name == name {
			return s, nil
		}
	}
	return SiteData{}, fmt.Errorf("%w: %s", ErrSiteNotFound, name)
}

// Validate checks that every site is named, unique, and has finite coefficients.
// Negative degree-day factors are allowed.
func (c *ConfigData) Validate() error {
	seen := make(map[string]struct{}, len(c.Sites))

	for i, s := range c.Sites {
		if s.Name == "" {
			return fmt.Errorf("site %d: %w", i, ErrMissingName)
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateSite, s.Name)
		}
		seen[s.Name] = struct{}{}

		if !isFinite(s.DegreeDayFactor) {
			return fmt.Errorf("site %s: degree_day_factor %v: %w", s.Name, s.DegreeDayFactor, ErrNonFinite)
		}
		if !isFinite(s.ThresholdTemp) {
			return fmt.Errorf("site %s: threshold_temp %v: %w", s.Name, s.ThresholdTemp, ErrNonFinite)
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NewProvider returns the provider for the given backend ("yaml" or "sqlite")
func NewProvider(path, backend string) (ConfigProvider, error) {
	switch backend {
	case "yaml":
		return NewYAMLProvider(path), nil
	case "sqlite":
		provider, err := NewSQLiteProvider(path)
		if err != nil {
			return nil, fmt.Errorf("error creating SQLite provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("%w: %s. Use 'yaml' or 'sqlite'", ErrUnsupportedBackend, backend)
	}
}

// Load reads and validates the configuration at path using the given backend
func Load(path, backend string) (*ConfigData, error) {
	provider, err := NewProvider(path, backend)
	if err != nil {
		return nil, err
	}
	defer provider.Close()

	cfg, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}
