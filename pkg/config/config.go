// Package config loads the optional imageview.yaml file that sets display and
// rendering defaults for image views.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/imageview/pkg/graphics"
	"github.com/go-drift/imageview/pkg/imageview"
	"github.com/go-drift/imageview/pkg/layout"
)

// FileName is the name of the configuration file looked up by LoadOptional.
const FileName = "imageview.yaml"

// Config represents the optional imageview.yaml configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Render  RenderConfig  `yaml:"render"`
}

// DisplayConfig describes the screen views are drawn for.
type DisplayConfig struct {
	Density   float64 `yaml:"density,omitempty"`
	Direction string  `yaml:"direction,omitempty"`
}

// RenderConfig contains view defaults.
type RenderConfig struct {
	ClipToOutline *bool  `yaml:"clipToOutline,omitempty"`
	Background    string `yaml:"background,omitempty"`
	FilterQuality string `yaml:"filterQuality,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	Density       layout.Density
	Direction     layout.TextDirection
	ClipToOutline bool
	Background    graphics.Color
	FilterQuality graphics.FilterQuality
}

var filterQualities = map[string]graphics.FilterQuality{
	"none":   graphics.FilterQualityNone,
	"low":    graphics.FilterQualityLow,
	"medium": graphics.FilterQualityMedium,
	"high":   graphics.FilterQualityHigh,
}

// LoadOptional reads imageview.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return cfg, nil
}

// Parse decodes configuration YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve loads imageview.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	resolved.Root = dir
	return resolved, nil
}

// Resolve validates cfg and fills in defaults.
func (cfg *Config) Resolve() (*Resolved, error) {
	density := cfg.Display.Density
	if density == 0 {
		density = 1
	}
	if density < 0 || math.IsNaN(density) || math.IsInf(density, 0) {
		return nil, fmt.Errorf("display.density must be a positive number, got %v", cfg.Display.Density)
	}

	direction := layout.TextDirectionLTR
	if s := strings.TrimSpace(cfg.Display.Direction); s != "" {
		d, err := layout.ParseTextDirection(s)
		if err != nil {
			return nil, fmt.Errorf("display.direction: %w", err)
		}
		direction = d
	}

	clip := true
	if cfg.Render.ClipToOutline != nil {
		clip = *cfg.Render.ClipToOutline
	}

	background := graphics.ColorTransparent
	if s := strings.TrimSpace(cfg.Render.Background); s != "" {
		c, err := graphics.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("render.background: %w", err)
		}
		background = c
	}

	quality := graphics.FilterQualityMedium
	if s := strings.TrimSpace(cfg.Render.FilterQuality); s != "" {
		q, ok := filterQualities[strings.ToLower(s)]
		if !ok {
			return nil, fmt.Errorf("render.filterQuality: unknown quality %q", s)
		}
		quality = q
	}

	return &Resolved{
		Density:       layout.Density(density),
		Direction:     direction,
		ClipToOutline: clip,
		Background:    background,
		FilterQuality: quality,
	}, nil
}

// ViewOptions returns surface options for the resolved display settings.
func (r *Resolved) ViewOptions(loader imageview.Loader) imageview.Options {
	return imageview.Options{
		Loader:        loader,
		Units:         r.Density,
		Direction:     layout.FixedDirection(r.Direction),
		FilterQuality: r.FilterQuality,
	}
}
