package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// SiteYAML is the on-disk form of SiteData
type SiteYAML struct {
	Name            string   `yaml:"name"`
	DegreeDayFactor float64  `yaml:"degree_day_factor"`
	ThresholdTemp   *float64 `yaml:"threshold_temp,omitempty"`
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	var yamlConfig struct {
		Sites []SiteYAML `yaml:"sites"`
	}

	if err := yaml.UnmarshalStrict(cfgFile, &yamlConfig); err != nil {
		return nil, err
	}

	config := &ConfigData{
		Sites: make([]SiteData, len(yamlConfig.Sites)),
	}

	for i, site := range yamlConfig.Sites {
		config.Sites[i] = SiteData{
			Name:            site.Name,
			DegreeDayFactor: site.DegreeDayFactor,
			ThresholdTemp:   0.0,
		}
		if site.ThresholdTemp != nil {
			config.Sites[i].ThresholdTemp = *site.ThresholdTemp
		}
	}

	y.config = config
	return config, nil
}

// GetSites returns site configurations, loading the file on first use
func (y *YAMLProvider) GetSites() ([]SiteData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return y.config.Sites, nil
}

// IsReadOnly returns true since YAML files are edited by hand
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}
