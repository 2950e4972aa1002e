// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/maximillianbartolo/BSS/pkg/engine"
)

// Button names registered with engo's input manager.
const (
	btnRotateLeft  = "rotateLeft"
	btnRotateRight = "rotateRight"
	btnThrust      = "thrust"
	btnRCSUp       = "rcsUp"
	btnRCSDown     = "rcsDown"
	btnRCSLeft     = "rcsLeft"
	btnRCSRight    = "rcsRight"
	btnZoomIn      = "zoomIn"
	btnZoomOut     = "zoomOut"
	btnSkin        = "toggleSkin"
	btnRestart     = "restart"
	btnQuit        = "quit"
)

// RegisterFlightBindings sets up the key bindings for the flight controls:
// arrows rotate the ship and burn the main engine, WASD fires the RCS
// thrusters, + and - (keypad included) zoom the camera, N swaps the hull
// skin, R restarts after a crash, and Escape quits.
func RegisterFlightBindings() {
	engo.Input.RegisterButton(btnRotateLeft, engo.KeyArrowLeft)
	engo.Input.RegisterButton(btnRotateRight, engo.KeyArrowRight)
	engo.Input.RegisterButton(btnThrust, engo.KeyArrowUp)

	engo.Input.RegisterButton(btnRCSUp, engo.KeyW)
	engo.Input.RegisterButton(btnRCSDown, engo.KeyS)
	engo.Input.RegisterButton(btnRCSLeft, engo.KeyA)
	engo.Input.RegisterButton(btnRCSRight, engo.KeyD)

	engo.Input.RegisterButton(btnZoomIn, engo.KeyEquals, engo.KeyNumAdd)
	engo.Input.RegisterButton(btnZoomOut, engo.KeyDash, engo.KeyNumSubtract)

	engo.Input.RegisterButton(btnSkin, engo.KeyN)
	engo.Input.RegisterButton(btnRestart, engo.KeyR)
	engo.Input.RegisterButton(btnQuit, engo.KeyEscape)
}

// PollControls reads the held flight keys into the engine's control set.
// The mouse wheel doubles as a zoom control for the frame it scrolled in.
func PollControls() engine.ControlState {
	scroll := engo.Input.Mouse.ScrollY

	return engine.ControlState{
		RotateLeft:  engo.Input.Button(btnRotateLeft).Down(),
		RotateRight: engo.Input.Button(btnRotateRight).Down(),
		Thrust:      engo.Input.Button(btnThrust).Down(),
		RCSUp:       engo.Input.Button(btnRCSUp).Down(),
		RCSDown:     engo.Input.Button(btnRCSDown).Down(),
		RCSLeft:     engo.Input.Button(btnRCSLeft).Down(),
		RCSRight:    engo.Input.Button(btnRCSRight).Down(),
		ZoomIn:      engo.Input.Button(btnZoomIn).Down() || scroll > 0,
		ZoomOut:     engo.Input.Button(btnZoomOut).Down() || scroll < 0,
	}
}
