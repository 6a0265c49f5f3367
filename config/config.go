package config

import (
	"image/color"

	"github.com/automoto/pong-royale/render/fx"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// UIConfig contains HUD and menu layout values
type UIConfig struct {
	// HUD
	HUDMargin      float64
	LifePipSize    float64
	LifePipSpacing float64

	// Colors
	Background     color.RGBA
	ArenaFloor     color.RGBA
	ArenaBorder    color.RGBA
	WallColor      color.RGBA
	BallColor      color.RGBA
	BoostedBall    color.RGBA
	OrbColor       color.RGBA
	FeverTint      color.RGBA
	OverlayColor   color.RGBA
	EliminatedTint color.RGBA

	// Font sizes
	HUDFontSize       float64
	CountdownFontSize float64
	TitleFontSize     float64
}

// MatchSetupConfig holds the menu choices and their defaults
type MatchSetupConfig struct {
	PlayerCounts   []int
	LifeOptions    []int
	DefaultPlayers int
	DefaultLives   int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool   // Skip menu and go directly to a match
	BridgeAddr   string // Controller bridge listen address, empty disables it
	Arena        string // Arena preset name
	ShowHitboxes bool
}

// Global configuration instances
var C *Config
var UI UIConfig
var Effects fx.Timings
var MatchSetup MatchSetupConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

// PlayerColors is indexed by slot: top, right, bottom, left.
var PlayerColors = [4]color.RGBA{
	{R: 255, G: 50, B: 50, A: 255},
	{R: 50, G: 255, B: 50, A: 255},
	{R: 50, G: 50, B: 255, A: 255},
	{R: 255, G: 255, B: 50, A: 255},
}

// PlayerNames is indexed by slot.
var PlayerNames = [4]string{"Top", "Right", "Bottom", "Left"}

func init() {
	C = &Config{
		Width:  960,
		Height: 720,
	}

	UI = UIConfig{
		HUDMargin:      12,
		LifePipSize:    8,
		LifePipSpacing: 4,

		Background:     color.RGBA{R: 10, G: 10, B: 18, A: 255},
		ArenaFloor:     color.RGBA{R: 20, G: 20, B: 30, A: 255},
		ArenaBorder:    color.RGBA{R: 60, G: 60, B: 80, A: 255},
		WallColor:      color.RGBA{R: 200, G: 200, B: 200, A: 255},
		BallColor:      White,
		BoostedBall:    Orange,
		OrbColor:       color.RGBA{R: 255, G: 80, B: 200, A: 255},
		FeverTint:      color.RGBA{R: 255, G: 60, B: 160, A: 40},
		OverlayColor:   BlackOverlay,
		EliminatedTint: color.RGBA{R: 90, G: 90, B: 90, A: 255},

		HUDFontSize:       16,
		CountdownFontSize: 96,
		TitleFontSize:     40,
	}

	Effects = fx.Timings{
		CountdownPulse: 0.4,
		CountdownScale: 1.6,
		LifeLostFlash:  0.5,
		WallFadeIn:     0.6,
		PaddleHitFlash: 0.15,
		ResultFadeIn:   0.8,
	}

	MatchSetup = MatchSetupConfig{
		PlayerCounts:   []int{1, 2, 3, 4},
		LifeOptions:    []int{1, 3, 5, 9},
		DefaultPlayers: 4,
		DefaultLives:   3,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
