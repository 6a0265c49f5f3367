// Package arenadata parses arena presets authored as Tiled maps. It has no
// dependencies on ebitengine, donburi, or resolv: pure data only.
package arenadata

import "github.com/automoto/pong-royale/shared/tuning"

// Preset describes one arena layout.
type Preset struct {
	Name        string // file stem, stable across releases
	Title       string // shown in menus
	FieldWidth  float64
	FieldHeight float64
	MarginRatio float64 // 0 keeps the default
	WallRatio   float64 // 0 keeps the default
	OrbMargin   float64 // fever orb spawn inset as a fraction of side, 0 keeps the default
	Fever       bool
}

// Apply overlays the preset on a rule set.
func (p Preset) Apply(r *tuning.Rules) {
	if p.FieldWidth > 0 && p.FieldHeight > 0 {
		r.Arena.FieldWidth = p.FieldWidth
		r.Arena.FieldHeight = p.FieldHeight
	}
	if p.MarginRatio > 0 {
		r.Arena.MarginRatio = p.MarginRatio
	}
	if p.WallRatio > 0 {
		r.Arena.WallRatio = p.WallRatio
	}
	if p.OrbMargin > 0 {
		r.Fever.SpawnMarginPct = p.OrbMargin
	}
	r.Fever.Enabled = r.Fever.Enabled && p.Fever
}

// Default is used when no preset can be loaded.
func Default() Preset {
	return Preset{
		Name:        "classic",
		Title:       "Classic",
		FieldWidth:  tuning.Arena.FieldWidth,
		FieldHeight: tuning.Arena.FieldHeight,
		Fever:       true,
	}
}
