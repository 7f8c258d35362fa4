package model

import (
	"fmt"
	"strings"
)

// Mode selects which interaction the front end runs.
type Mode string

const (
	ModeCut  Mode = "cut"  // Click to cut, right click to switch orientation
	ModeDrag Mode = "drag" // Drag the shared edge of a linked pair
)

// AppConfig holds application-wide preferences.
type AppConfig struct {
	// Partition buffer in partition units; the root rectangle is inset from it
	BufferWidth  int `json:"buffer_width" yaml:"buffer_width"`
	BufferHeight int `json:"buffer_height" yaml:"buffer_height"`
	InsetPercent int `json:"inset_percent" yaml:"inset_percent"` // of BufferWidth, removed from each axis

	// Screen pixels per partition unit
	Scale int `json:"scale" yaml:"scale"`

	Mode      Mode   `json:"mode" yaml:"mode"`
	Theme     string `json:"theme" yaml:"theme"`         // "light", "dark", "system"
	LogLevel  string `json:"log_level" yaml:"log_level"` // "debug", "info", "warn", "error"
	ExportDir string `json:"export_dir" yaml:"export_dir"`
}

// DefaultAppConfig returns the default configuration: a 100x100
// buffer shown at 8x with a root rectangle inset by a quarter.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		BufferWidth:  100,
		BufferHeight: 100,
		InsetPercent: 25,
		Scale:        8,
		Mode:         ModeCut,
		Theme:        "system",
		LogLevel:     "info",
		ExportDir:    "",
	}
}

// Buffer returns the partition buffer size.
func (c AppConfig) Buffer() Size {
	return Size{Width: c.BufferWidth, Height: c.BufferHeight}
}

// Viewport returns the screen-to-partition mapping for this configuration.
func (c AppConfig) Viewport() Viewport {
	return ScaledViewport(c.Buffer(), c.Scale)
}

// RootRect returns the initial rectangle of a new partition.
func (c AppConfig) RootRect() Rect {
	buffer := NewRect(0, 0, c.BufferWidth, c.BufferHeight)
	return Inset(buffer, c.BufferWidth*c.InsetPercent/100)
}

// Validate checks that the configuration can drive a session.
func (c AppConfig) Validate() error {
	if c.BufferWidth <= 0 || c.BufferHeight <= 0 {
		return fmt.Errorf("buffer size must be > 0, got %dx%d", c.BufferWidth, c.BufferHeight)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be > 0, got %d", c.Scale)
	}
	if c.InsetPercent < 0 || c.InsetPercent >= 100 {
		return fmt.Errorf("inset percent must be in [0, 100), got %d", c.InsetPercent)
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	return nil
}

// ParseMode converts a user-supplied string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeCut:
		return ModeCut, nil
	case ModeDrag:
		return ModeDrag, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, ModeCut, ModeDrag)
	}
}
