// Package config loads the optional run configuration for the figure
// pipeline. Every field has a default matching the manuscript layout, so
// running without a config file (and without flags) works from the repo root.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"par2fig/internal/render"
	"par2fig/internal/results"
)

// Config holds paths and rendering options for a figure run.
type Config struct {
	// Results is the comprehensive results document path.
	Results string `yaml:"results" json:"results"`
	// OutDir receives the generated figure pairs.
	OutDir string `yaml:"outDir" json:"outDir"`
	// DPI applies to raster output only.
	DPI int `yaml:"dpi" json:"dpi"`

	// Standalone figure inputs.
	DiscoveryCSV string `yaml:"discoveryCsv" json:"discoveryCsv"`
	HeatmapData  string `yaml:"heatmapData" json:"heatmapData"`
	PathwayModel string `yaml:"pathwayModel" json:"pathwayModel"`
}

// Default returns the fixed manuscript layout.
func Default() Config {
	return Config{
		Results:      results.DefaultPath,
		OutDir:       filepath.Join("manuscripts", "figures", "generated"),
		DPI:          render.DefaultDPI,
		DiscoveryCSV: "figure1_discovery_rates.csv",
		HeatmapData:  "figure2_heatmap.json",
		PathwayModel: "figure3_pathway_model.json",
	}
}

// LoadFromPath reads a config file (YAML or JSON) and fills unset fields
// with defaults. Format is detected by extension, or by content when the
// extension is unknown.
func LoadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config bytes. ext is the file extension hint (".json",
// ".yaml"); empty means detect from content.
func Load(data []byte, ext string) (Config, error) {
	var cfg Config
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	switch ext {
	case ".yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config json: %w", err)
		}
	default:
		// Detect: JSON starts with {, everything else parses as YAML.
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config json: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := Default()
	if c.Results == "" {
		c.Results = def.Results
	}
	if c.OutDir == "" {
		c.OutDir = def.OutDir
	}
	if c.DPI <= 0 {
		c.DPI = def.DPI
	}
	if c.DiscoveryCSV == "" {
		c.DiscoveryCSV = def.DiscoveryCSV
	}
	if c.HeatmapData == "" {
		c.HeatmapData = def.HeatmapData
	}
	if c.PathwayModel == "" {
		c.PathwayModel = def.PathwayModel
	}
	return c
}
