package ui

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/makoto-kob/gones/nes"
)

// setButtons polls the keyboard, WASD for the d-pad, F/G for select/start,
// H/J for B/A, and pushes each logical button's state into console.
func setButtons(console nes.Console, window *glfw.Window) {
	console.SetButton(nes.ButtonRight, window.GetKey(glfw.KeyD) == glfw.Press)
	console.SetButton(nes.ButtonLeft, window.GetKey(glfw.KeyA) == glfw.Press)
	console.SetButton(nes.ButtonDown, window.GetKey(glfw.KeyS) == glfw.Press)
	console.SetButton(nes.ButtonUp, window.GetKey(glfw.KeyW) == glfw.Press)
	console.SetButton(nes.ButtonStart, window.GetKey(glfw.KeyG) == glfw.Press)
	console.SetButton(nes.ButtonSelect, window.GetKey(glfw.KeyF) == glfw.Press)
	console.SetButton(nes.ButtonB, window.GetKey(glfw.KeyH) == glfw.Press)
	console.SetButton(nes.ButtonA, window.GetKey(glfw.KeyJ) == glfw.Press)
}
