package game

import "github.com/go-gl/glfw/v3.3/glfw"

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// CursorWorldPos converts cursor position to world coordinates.
func CursorWorldPos(window *glfw.Window, cam Camera, fbW, fbH int) (float64, float64) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return cam.X, cam.Y
	}
	scaleX := float64(fbW) / float64(winW)
	scaleY := float64(fbH) / float64(winH)
	fx := cx * scaleX
	fy := cy * scaleY
	wx := cam.X + (fx-float64(fbW)*0.5)/cam.Zoom
	wy := cam.Y + (fy-float64(fbH)*0.5)/cam.Zoom
	return wx, wy
}
