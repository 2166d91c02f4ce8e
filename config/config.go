package config

import (
	"image/color"
	"time"

	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/protocol"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// FlightConfig contains the local aircraft's starting state and the
// simulation cadence.
type FlightConfig struct {
	StartX, StartY float64
	StartHeading   float64
	Speed          float64 // world units per step
	StepOrder      flight.StepOrder
	StepsPerSecond float64

	ProjectileSpeed float64 // world units per step
}

// NetConfig describes the relay host and the wire format.
type NetConfig struct {
	Host        string
	Port        int
	LocalAddr   string
	Format      protocol.Format
	SendTimeout time.Duration
	SendQueue   int
	Offline     bool // fly without a host; nothing is sent
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	RotateWithHeading bool // Rotate the world around the aircraft
	Zoom              float64
}

// UIConfig contains rendering constants
type UIConfig struct {
	BackgroundColor color.RGBA
	GridColor       color.RGBA
	BoundColor      color.RGBA
	GridSpacing     float64

	AircraftSize    float32
	LocalColor      color.RGBA
	RemoteColor     color.RGBA
	ProjectileColor color.RGBA
	ProjectileSize  float32

	// Seconds a remote sprite takes to glide to a new roster position.
	RemoteSmoothing float32

	HUDFontSize float64
	HUDColor    color.RGBA
}

// LogConfig selects log sinks
type LogConfig struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Console    bool
	Debug      bool
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD bool
}

// Global configuration instances
var C *Config
var Flight FlightConfig
var Net NetConfig
var Camera CameraConfig
var UI UIConfig
var Log LogConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Sky        = color.RGBA{R: 184, G: 219, B: 255, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Red        = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	DarkBlue   = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	GridBlue   = color.RGBA{R: 150, G: 190, B: 235, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 960,
		Title:  "Maverick 2D",
	}

	Flight = FlightConfig{
		StartX:          0,
		StartY:          0,
		StartHeading:    0,
		Speed:           7,
		StepOrder:       flight.TurnThenMove,
		StepsPerSecond:  60,
		ProjectileSpeed: 20,
	}

	Net = NetConfig{
		Host:        "127.0.0.1",
		Port:        1337,
		LocalAddr:   ":0",
		Format:      protocol.FormatJSON,
		SendTimeout: 10 * time.Second,
		SendQueue:   64,
	}

	Camera = CameraConfig{
		RotateWithHeading: true,
		Zoom:              1.0,
	}

	UI = UIConfig{
		BackgroundColor: Sky,
		GridColor:       GridBlue,
		BoundColor:      DarkBlue,
		GridSpacing:     256,

		AircraftSize:    24,
		LocalColor:      LightGreen,
		RemoteColor:     Red,
		ProjectileColor: Yellow,
		ProjectileSize:  3,

		RemoteSmoothing: 0.1,

		HUDFontSize: 14,
		HUDColor:    White,
	}

	Log = LogConfig{
		File:       "maverick.log",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Console:    true,
	}

	Debug = DebugConfig{
		ShowHUD: true,
	}
}
