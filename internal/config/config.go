// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Default settings applied when neither a profile nor a flag overrides them.
	Defaults struct {
		Format              string `yaml:"format"`
		Verbose             bool   `yaml:"verbose"`
		Debug               bool   `yaml:"debug"`
		NoColor             bool   `yaml:"no_color"`
		ShowRecords         bool   `yaml:"show_records"`
		EnablePreprocessors bool   `yaml:"enable_preprocessors"`
	} `yaml:"defaults"`

	// Profiles for different auditing scenarios.
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents an auditing profile with specific settings.
type Profile struct {
	Format              string `yaml:"format"`
	Verbose             bool   `yaml:"verbose"`
	Debug               bool   `yaml:"debug"`
	NoColor             bool   `yaml:"no_color"`
	ShowRecords         bool   `yaml:"show_records"`
	EnablePreprocessors bool   `yaml:"enable_preprocessors"`
	Description         string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	config.Defaults.Format = "text"
	config.Defaults.EnablePreprocessors = true

	// Default CI profile: machine-readable, no color, no record echoing.
	config.Profiles["ci"] = Profile{
		Format:              "json",
		NoColor:             true,
		EnablePreprocessors: true,
		Description:         "Optimized for CI pipelines with JSON output and no color",
	}

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Preserve defaults for bool fields the file leaves unset; unmarshaling
	// would otherwise force them to false.
	defaultEnablePreprocessors := config.Defaults.EnablePreprocessors

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if !containsField(data, "defaults", "enable_preprocessors") {
		config.Defaults.EnablePreprocessors = defaultEnablePreprocessors
	}

	return config, nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it
// returns the default configuration.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults rather than crash on a bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// FindConfigFile looks for a configuration file in standard locations.
func FindConfigFile() string {
	// Project-local files take precedence.
	for _, name := range []string{"passport-audit.yaml", "passport-audit.yml", ".passport-audit.yaml", ".passport-audit.yml"} {
		if fileExists(name) {
			return name
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(xdgConfig, "passport-audit", name)
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

// ListProfiles returns a list of available profile names.
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found.
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// containsField checks if a nested field exists in the YAML data.
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			_, exists := current[key]
			return exists
		}
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return false
		}
		current = next
	}
	return false
}
