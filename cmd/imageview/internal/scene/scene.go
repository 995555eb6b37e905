// Package scene reads the YAML scene files rendered by the imageview CLI.
//
// A scene describes one view:
//
//	format: "1.0"
//	width: 120
//	height: 80
//	image: photo.png
//	props:
//	  borderRadius: 12
//	  borderColor: "#FF0000"
//	  resizeMode: contain
//
// Width and height are in device-independent units. Props use the names and
// value rules of the props package.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the scene format major version this build reads.
const SupportedMajor = "v1"

// Scene is one decoded scene file.
type Scene struct {
	Format string         `yaml:"format"`
	Width  float64        `yaml:"width"`
	Height float64        `yaml:"height"`
	Image  string         `yaml:"image,omitempty"`
	Props  map[string]any `yaml:"props,omitempty"`

	// Dir is the directory of the scene file. Relative image paths resolve
	// against it.
	Dir string `yaml:"-"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("scene file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	sc.Dir = filepath.Dir(path)
	return sc, nil
}

// Parse decodes and validates scene YAML.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := CheckFormat(sc.Format); err != nil {
		return nil, err
	}
	if !(sc.Width > 0) || !(sc.Height > 0) {
		return nil, fmt.Errorf("width and height must be positive, got %vx%v", sc.Width, sc.Height)
	}
	return &sc, nil
}

// CheckFormat reports whether format names a readable scene version. The
// leading "v" is optional and minor or patch parts may be omitted.
func CheckFormat(format string) error {
	format = strings.TrimSpace(format)
	if format == "" {
		return fmt.Errorf("missing scene format (want %s.x)", SupportedMajor)
	}
	v := format
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid scene format %q", format)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("unsupported scene format %s (want %s.x)", semver.Canonical(v), SupportedMajor)
	}
	return nil
}

// ViewProps returns the props to apply, adding a source for Image when the
// props do not set one.
func (sc *Scene) ViewProps() map[string]any {
	props := make(map[string]any, len(sc.Props)+1)
	for k, v := range sc.Props {
		props[k] = v
	}
	if _, ok := props["source"]; !ok && sc.Image != "" {
		props["source"] = map[string]any{"uri": sc.Image}
	}
	return props
}

// PixelSize returns the scene size in pixels at density.
func (sc *Scene) PixelSize(density float64) (width, height int) {
	if density <= 0 {
		density = 1
	}
	return ceil(sc.Width * density), ceil(sc.Height * density)
}

func ceil(v float64) int {
	n := int(v)
	if float64(n) < v {
		n++
	}
	return n
}
