package components

import (
	cfg "github.com/automoto/maverick2d/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// StickSource is the device currently driving the virtual stick.
type StickSource int

const (
	StickTouch StickSource = iota
	StickMouse
	StickGamepad
)

// StickData is the virtual analog stick. It is engaged by a touch or mouse
// drag in the lower part of the screen, or by the gamepad's left stick.
type StickData struct {
	Active       bool
	Source       StickSource
	Touch        ebiten.TouchID
	CenterX      float64
	CenterY      float64
	Displacement float64 // horizontal offset from the center, clamped to the stick radius
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	Stick           StickData
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
