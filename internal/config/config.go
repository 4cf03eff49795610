// Package config reads the optional tabula config file and merges it with
// built-in defaults. Flags override file values; the merge helpers here only
// see defaults and file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/tabula/pkg/settings"
)

// File is the on-disk config schema. All fields are pointers so a merge can
// tell "not set" apart from a zero value.
type File struct {
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// RenderConfig holds default rendering options, each overridable per run by
// the matching CLI flag.
type RenderConfig struct {
	Preset       *string `yaml:"preset"`
	Arrangement  *string `yaml:"arrangement"`
	Width        *int    `yaml:"width"`
	MaxHeight    *int    `yaml:"max_height"`
	PaddingLeft  *int    `yaml:"padding_left"`
	PaddingRight *int    `yaml:"padding_right"`
	RoundCorners *bool   `yaml:"round_corners"`
	NoColor      *bool   `yaml:"no_color"`
}

// LogConfig holds logging defaults.
type LogConfig struct {
	Level *string `yaml:"level"`
}

// Default returns the built-in configuration: ASCII frame, dynamic
// arrangement sized to the terminal, one space of padding, info logging.
func Default() File {
	return File{
		Render: RenderConfig{
			Preset:       ptr("ascii"),
			Arrangement:  ptr("dynamic"),
			MaxHeight:    ptr(0),
			PaddingLeft:  ptr(1),
			PaddingRight: ptr(1),
			RoundCorners: ptr(false),
			NoColor:      ptr(false),
		},
		Log: LogConfig{
			Level: ptr("info"),
		},
	}
}

// DefaultPath returns the conventional config file location
// (~/.config/tabula/config.yaml on Linux), or empty when the user config
// directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, settings.CliBinaryName, "config.yaml")
}

// Load reads path and merges it over the defaults. An empty path tries the
// default location; a missing file there is not an error, but an explicitly
// named file must exist.
func Load(path string) (File, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return Merge(cfg, file), nil
}

// Merge overlays override on base, field by field. Unset override fields
// keep the base value.
func Merge(base, override File) File {
	out := base
	apply(&out.Render.Preset, override.Render.Preset)
	apply(&out.Render.Arrangement, override.Render.Arrangement)
	apply(&out.Render.Width, override.Render.Width)
	apply(&out.Render.MaxHeight, override.Render.MaxHeight)
	apply(&out.Render.PaddingLeft, override.Render.PaddingLeft)
	apply(&out.Render.PaddingRight, override.Render.PaddingRight)
	apply(&out.Render.RoundCorners, override.Render.RoundCorners)
	apply(&out.Render.NoColor, override.Render.NoColor)
	apply(&out.Log.Level, override.Log.Level)
	return out
}

func apply[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

func ptr[T any](v T) *T {
	return &v
}
