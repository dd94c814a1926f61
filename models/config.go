// Package models defines configuration for the reporting pipeline.
package models

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultStartYear is the first year shown on the dual-axis
// posts/reads chart when the config does not set one.
const defaultStartYear = 2018

// Config holds the runtime configuration loaded from the YAML config
// file. Input paths point at the raw exports; all artifacts are written
// under OutputDir with Label as the basename prefix.
type Config struct {
	DouyinInput     string `yaml:"douyin_input"`
	WeiboInput      string `yaml:"weibo_input"`
	OutputDir       string `yaml:"output_dir"`
	Label           string `yaml:"label"`
	StartYear       int    `yaml:"start_year"`
	WkhtmltopdfPath string `yaml:"wkhtmltopdf_path"`
}

// LoadConfig reads and validates the YAML config file, applying
// defaults for optional fields. DouyinInput stays optional here; the
// weibo-only commands never read it, so the combined report validates
// it itself.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.WeiboInput == "" {
		return nil, fmt.Errorf("config %s: weibo_input is required", path)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Label == "" {
		cfg.Label = "stats"
	}
	if cfg.StartYear == 0 {
		cfg.StartYear = defaultStartYear
	}

	return &cfg, nil
}

// ArtifactPath builds an output path under OutputDir from the label
// prefix and a suffix like "_yearly_stats_douyin.csv".
func (c *Config) ArtifactPath(suffix string) string {
	return filepath.Join(c.OutputDir, c.Label+suffix)
}
