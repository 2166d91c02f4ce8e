package systems

import (
	"github.com/automoto/maverick2d/components"
	cfg "github.com/automoto/maverick2d/config"
	"github.com/automoto/maverick2d/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE the steering system in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				input.LastInputMethod = components.InputKeyboard
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					input.LastInputMethod = components.InputGamepad
				}
			}
		}
	}

	updateTouchStick(input)
	updateMouseStick(input)
	updateGamepadStick(input, gamepadIDs)
}

// updateTouchStick engages the stick on a touch in the lower part of the
// screen. A touch anywhere else is a tap and fires.
func updateTouchStick(input *components.InputData) {
	stick := &input.Stick

	if stick.Active && stick.Source == components.StickTouch {
		if inpututil.IsTouchJustReleased(stick.Touch) {
			stick.Active = false
			stick.Displacement = 0
		} else {
			x, _ := ebiten.TouchPosition(stick.Touch)
			stick.Displacement = stickDisplacement(float64(x), stick.CenterX, cfg.Input.StickRadius)
		}
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		input.LastInputMethod = components.InputTouch
		if !stick.Active && inStickZone(float64(y), float64(cfg.C.Height)) {
			engageStick(stick, components.StickTouch, float64(x), float64(y))
			stick.Touch = id
			continue
		}
		input.Current[cfg.ActionFire] = true
	}
}

// updateMouseStick mirrors the touch stick with the left mouse button so
// the game is playable on desktop.
func updateMouseStick(input *components.InputData) {
	stick := &input.Stick
	x, y := ebiten.CursorPosition()

	if stick.Active && stick.Source == components.StickMouse {
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			stick.Active = false
			stick.Displacement = 0
		} else {
			stick.Displacement = stickDisplacement(float64(x), stick.CenterX, cfg.Input.StickRadius)
		}
		return
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if !stick.Active && inStickZone(float64(y), float64(cfg.C.Height)) {
		engageStick(stick, components.StickMouse, float64(x), float64(y))
		return
	}
	input.Current[cfg.ActionFire] = true
}

// updateGamepadStick drives the stick from the first gamepad whose left
// stick is outside the deadzone, unless a touch or mouse already holds it.
func updateGamepadStick(input *components.InputData, gamepads []ebiten.GamepadID) {
	stick := &input.Stick
	if stick.Active && stick.Source != components.StickGamepad {
		return
	}

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h > -cfg.Input.AnalogDeadzone && h < cfg.Input.AnalogDeadzone {
			continue
		}
		stick.Active = true
		stick.Source = components.StickGamepad
		stick.Displacement = gamepadDisplacement(h, cfg.Input.StickRadius)
		input.LastInputMethod = components.InputGamepad
		return
	}

	if stick.Source == components.StickGamepad {
		stick.Active = false
		stick.Displacement = 0
	}
}

func engageStick(stick *components.StickData, src components.StickSource, x, y float64) {
	stick.Active = true
	stick.Source = src
	stick.CenterX = x
	stick.CenterY = y
	stick.Displacement = 0
}

// stickDisplacement is the horizontal offset of x from the stick center,
// limited to the stick's travel.
func stickDisplacement(x, centerX, radius float64) float64 {
	return gamemath.ClampAbs(x-centerX, radius)
}

// gamepadDisplacement scales an axis value in [-1, 1] to stick travel.
func gamepadDisplacement(axis, radius float64) float64 {
	return gamemath.ClampAbs(axis, 1) * radius
}

// inStickZone reports whether a press at screen y starts the stick rather
// than firing. The stick lives in the lower half of the screen.
func inStickZone(y, screenHeight float64) bool {
	return y >= screenHeight/2
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
