package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the configurable paths and render settings. A JSON config
// file can pre-set any field; CLI flags take priority.
type Config struct {
	// Paths
	AssetsRoot string `json:"assets_root"`
	Output     string `json:"output"`

	// Render settings
	BodyType     string `json:"body_type"`
	Directions   string `json:"directions"`
	StripPadding int    `json:"strip_padding"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetsRoot string
	Output     string
	BodyType   string
	Directions string
}

// Resolve applies flag overrides and fills remaining empty fields with
// defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.AssetsRoot != "" {
		c.AssetsRoot = flags.AssetsRoot
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.BodyType != "" {
		c.BodyType = flags.BodyType
	}
	if flags.Directions != "" {
		c.Directions = flags.Directions
	}

	if c.BodyType == "" {
		c.BodyType = "Male"
	}
	if c.Directions == "" {
		c.Directions = "north,south,east"
	}
	if c.StripPadding <= 0 {
		c.StripPadding = 4
	}
}
