// Package ui provides the RectCut desktop application.
//
// This file defines the application theme: the default Fyne theme pinned to
// a light or dark variant chosen in preferences.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// RectCutTheme wraps the default Fyne theme with a fixed variant and a
// tighter padding so the partition canvas gets most of the window.
type RectCutTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewRectCutThemeWithVariant creates a RectCutTheme with a specific light/dark variant.
func NewRectCutThemeWithVariant(variant fyne.ThemeVariant) *RectCutTheme {
	return &RectCutTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
	}
}

// NewRectCutThemeFor resolves a preference name ("light", "dark", "system")
// to a theme. "system" and unknown names follow the given system variant.
func NewRectCutThemeFor(name string, system fyne.ThemeVariant) *RectCutTheme {
	switch name {
	case "light":
		return NewRectCutThemeWithVariant(theme.VariantLight)
	case "dark":
		return NewRectCutThemeWithVariant(theme.VariantDark)
	default:
		return NewRectCutThemeWithVariant(system)
	}
}

// Variant returns the pinned variant.
func (t *RectCutTheme) Variant() fyne.ThemeVariant { return t.variant }

// Color delegates to the base theme with the stored variant.
func (t *RectCutTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

func (t *RectCutTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *RectCutTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *RectCutTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return t.base.Size(name)
	}
}
