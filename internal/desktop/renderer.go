package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"sweepsnake/internal/game"
)

// Upper bounds for the streaming buffers.
const (
	maxLineVerts = 4096
	maxSprites   = 64
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type uniforms struct {
	camera, zoom, resolution int32
}

func lookupUniforms(prog uint32) uniforms {
	return uniforms{
		camera:     gl.GetUniformLocation(prog, gl.Str("uCamera\x00")),
		zoom:       gl.GetUniformLocation(prog, gl.Str("uZoom\x00")),
		resolution: gl.GetUniformLocation(prog, gl.Str("uResolution\x00")),
	}
}

func (u uniforms) set(cam game.Camera, fbW, fbH int) {
	x, y := cam.EffectivePos()
	gl.Uniform2f(u.camera, float32(x), float32(y))
	gl.Uniform1f(u.zoom, float32(cam.Zoom))
	gl.Uniform2f(u.resolution, float32(fbW), float32(fbH))
}

type Renderer struct {
	lineProg uint32
	lineVAO  uint32
	lineVBO  uint32
	lineU    uniforms

	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32
	spriteU    uniforms

	// Reusable buffers to avoid per-frame heap allocations.
	bodyBuf, borderBuf, spriteBuf []float32
}

func NewRenderer() (*Renderer, error) {
	lineProg, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		return nil, fmt.Errorf("line program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(lineProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{
		lineProg:   lineProg,
		spriteProg: spriteProg,
		lineU:      lookupUniforms(lineProg),
		spriteU:    lookupUniforms(spriteProg),
	}

	// Line VAO/VBO: each vertex is 6 floats (x, y, r, g, b, a).
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	lineStride := int32(game.LineStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxLineVerts*int(lineStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, lineStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, lineStride, glOffset(2*4))

	// Sprite VAO/VBO: each sprite is 8 floats (x, y, size, r, g, b, a, rotation).
	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	spriteStride := int32(game.SpriteStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSprites*int(spriteStride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, spriteStride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, spriteStride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, spriteStride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, spriteStride, glOffset(7*4))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.lineVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.lineVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.lineProg, r.spriteProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// DrawFrame renders the board border, the body polyline, then the food
// and head sprites.
func (r *Renderer) DrawFrame(st game.State, cam game.Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.borderBuf = game.BorderLineData(float64(st.Width), float64(st.Height), r.borderBuf)
	r.bodyBuf = game.BodyLineData(st.Snake, r.bodyBuf)
	r.spriteBuf = game.SpriteData(st, r.spriteBuf)

	gl.UseProgram(r.lineProg)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	r.lineU.set(cam, fbW, fbH)
	r.drawLineStrip(r.borderBuf)
	r.drawLineStrip(r.bodyBuf)

	if n := len(r.spriteBuf) / game.SpriteStride; n > 0 {
		if n > maxSprites {
			n = maxSprites
		}
		gl.UseProgram(r.spriteProg)
		gl.BindVertexArray(r.spriteVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
		r.spriteU.set(cam, fbW, fbH)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*game.SpriteStride*4, gl.Ptr(r.spriteBuf))
		gl.DrawArrays(gl.POINTS, 0, int32(n))
	}

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawLineStrip(buf []float32) {
	n := len(buf) / game.LineStride
	if n == 0 {
		return
	}
	if n > maxLineVerts {
		n = maxLineVerts
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*game.LineStride*4, gl.Ptr(buf))
	if n == 1 {
		gl.DrawArrays(gl.POINTS, 0, 1)
		return
	}
	gl.DrawArrays(gl.LINE_STRIP, 0, int32(n))
}
