package config

import (
	"image/color"

	"github.com/automoto/dasher/shared/dashconfig"
	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// Gameplay tuning lives in the headless dashconfig package.
type (
	VariantID    = dashconfig.VariantID
	Variant      = dashconfig.Variant
	TextureSizes = dashconfig.TextureSizes
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string

	// AssetRoot is the directory texture paths are resolved against.
	AssetRoot string
	// TuningFile is an optional YAML file of per-variant overrides.
	TuningFile string
}

// MenuConfig contains variant picker configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	StatsColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonWidth     int
	ButtonHeight    int
	Title           string
	FontSize        float64
	TitleFontSize   float64
}

// EndScreenConfig contains the Game Over / You Win overlay values
type EndScreenConfig struct {
	LoseText     string
	WinText      string
	LoseColor    color.RGBA
	WinColor     color.RGBA
	HintColor    color.RGBA
	Hint         string
	FontSize     float64
	FadeDuration float32 // seconds
}

// HUDConfig contains the in-run overlay values
type HUDConfig struct {
	Margin    int
	LineGap   int
	TextColor color.RGBA
	FontSize  float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the chosen variant
	Hitboxes bool // Outline padded hitboxes and print TPS/FPS
}

// Global configuration instances
var C *Config
var Menu MenuConfig
var EndScreen EndScreenConfig
var HUD HUDConfig
var Debug DebugConfig

// Current is the variant the next run is built from.
var Current Variant

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	RayWhite     = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	Red          = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	DarkGray     = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Current, _ = dashconfig.Preset(dashconfig.DefaultVariant)

	C = &Config{
		Width:     Current.WindowWidth,
		Height:    Current.WindowHeight,
		TPS:       dashconfig.TargetTPS,
		Title:     "Dasher",
		AssetRoot: ".",
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		TextColor:       White,
		StatsColor:      LightBlue,
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   BrightOrange,
		ButtonWidth:     300,
		ButtonHeight:    34,
		Title:           "DASHER",
		FontSize:        14,
		TitleFontSize:   32,
	}

	EndScreen = EndScreenConfig{
		LoseText:     "Game Over",
		WinText:      "You Win",
		LoseColor:    Red,
		WinColor:     White,
		HintColor:    White,
		Hint:         "ENTER retry   ESC menu",
		FontSize:     40,
		FadeDuration: 0.6,
	}

	HUD = HUDConfig{
		Margin:    8,
		LineGap:   14,
		TextColor: DarkGray,
		FontSize:  12,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Hitboxes: false,
	}
}

// UseVariant makes v the current variant and resizes the logical screen to
// its window.
func UseVariant(v Variant) {
	Current = v
	C.Width = v.WindowWidth
	C.Height = v.WindowHeight
}
