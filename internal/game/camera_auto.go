package game

import "math"

// UpdateAutoCamera fits the entire board on screen at all times.
// Zoom is computed so the world fills the framebuffer; camera is centered.
func UpdateAutoCamera(cam *Camera, fbW, fbH int) {
	zoomW := float64(fbW) / float64(WorldWidth)
	zoomH := float64(fbH) / float64(WorldHeight)
	cam.Zoom = math.Min(zoomW, zoomH)
	cam.X = float64(WorldWidth) / 2
	cam.Y = float64(WorldHeight) / 2
}
