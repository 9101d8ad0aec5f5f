package game

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawSprites renders an array of flat point sprites.
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int) {
	r.drawWith(r.spriteProg, r.spUCamera, r.spUZoom, r.spUResolution, buf, cam, fbW, fbH, false)
}

// DrawGlowSprites renders light sprites with additive blending and radial
// falloff. RGB values should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, cam Camera, fbW, fbH int) {
	r.drawWith(r.glowProg, r.glowUCamera, r.glowUZoom, r.glowUResolution, buf, cam, fbW, fbH, true)
}

// DrawBallSprites renders tokens and projectiles with the shaded-circle
// program.
func (r *Renderer) DrawBallSprites(buf []float32, cam Camera, fbW, fbH int) {
	r.drawWith(r.ballProg, r.ballUCamera, r.ballUZoom, r.ballUResolution, buf, cam, fbW, fbH, false)
}

func (r *Renderer) drawWith(prog uint32, uCam, uZoom, uRes int32, buf []float32, cam Camera, fbW, fbH int, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxParticleRender {
		count = MaxParticleRender
	}

	gl.UseProgram(prog)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	cx, cy := cam.EffectivePos()
	gl.Uniform2f(uCam, float32(cx), float32(cy))
	gl.Uniform1f(uZoom, float32(cam.Zoom))
	gl.Uniform2f(uRes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
