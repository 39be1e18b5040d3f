package main

import (
	"fmt"

	"SpacecraftGolang/config"
	"SpacecraftGolang/flight"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func input(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyF3:
		showDebug = !showDebug
	case glfw.KeyF2:
		drawOptions.Mode = drawOptions.Mode.Next()
		fmt.Printf("render mode: %s\n", drawOptions.Mode)
	case glfw.KeyEscape:
		if window.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled {
			window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		} else {
			window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			firstMouse = true
		}
	case glfw.KeyF11:
		if monitor == nil {
			//set to fullscreen
			monitor = glfw.GetPrimaryMonitor()
			mode := monitor.GetVideoMode()
			window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		} else {
			//set to windowed
			oX, oY := monitor.GetVideoMode().Width, monitor.GetVideoMode().Height
			monitor = nil
			w, h := config.WindowWidth, config.WindowHeight
			window.SetMonitor(nil, (oX/2)-(w/2), (oY/2)-(h/2), w, h, 0)
		}
	}
}

func mouseMoveCallback(window *glfw.Window, xPos, yPos float64) {
	if window.GetInputMode(glfw.CursorMode) != glfw.CursorDisabled {
		return
	}
	if firstMouse {
		lastX = xPos
		lastY = yPos
		firstMouse = false
	}

	xoffset := xPos - lastX
	yoffset := lastY - yPos // Reversed since y-coordinates go from bottom to top
	lastX = xPos
	lastY = yPos

	craft.Look(xoffset, yoffset)
}

// Thrust inputs, checked each frame for fast responses.
func movement(window *glfw.Window) {
	pressed := func(k glfw.Key) bool { return window.GetKey(k) == glfw.Press }

	craft.Thrust(flight.Input{
		Forward: pressed(glfw.KeyW),
		Back:    pressed(glfw.KeyS),
		Left:    pressed(glfw.KeyA),
		Right:   pressed(glfw.KeyD),
		Up:      pressed(glfw.KeySpace),
		Down:    pressed(glfw.KeyLeftControl),
		Boost:   pressed(glfw.KeyLeftShift),
	}, thrustSpeed, boostMultiplier, deltaTime)
}
