//go:build !android

// Package render draws the swarm as instanced soft sprites.
package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"curveswarm/internal/swarm"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer implements swarm.Drawer. It must be created and used on the
// goroutine owning the GL context.
type Renderer struct {
	prog        uint32
	vao         uint32
	quadVBO     uint32
	instanceVBO uint32

	uViewProj int32
	uSize     int32
	uColor    int32

	size  float32
	color colorful.Color
}

var _ swarm.Drawer = (*Renderer)(nil)

// NewRenderer builds the sprite program and buffers. size is the sprite
// edge in world units.
func NewRenderer(size float32, color colorful.Color) (*Renderer, error) {
	prog, err := linkProgram(particleVertSrc, particleFragSrc)
	if err != nil {
		return nil, fmt.Errorf("particle program: %w", err)
	}
	r := &Renderer{prog: prog, size: size, color: color}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Quad: 6 corners, 2 triangles, shared by every instance.
	quad := [12]float32{
		-0.5, -0.5, 0.5, -0.5, 0.5, 0.5,
		-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	}
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(&quad[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	// Instances: streamed every draw.
	stride := int32(swarm.InstanceStride * 4)
	gl.GenBuffers(1, &r.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(0))
	gl.VertexAttribDivisor(1, 1)

	gl.BindVertexArray(0)

	gl.UseProgram(prog)
	r.uViewProj = gl.GetUniformLocation(prog, gl.Str("uViewProj\x00"))
	r.uSize = gl.GetUniformLocation(prog, gl.Str("uSize\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))

	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteBuffers(1, &r.instanceVBO)
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.prog)
}

// BeginFrame clears to bg and loads the camera for the draws that follow.
func (r *Renderer) BeginFrame(viewProj mgl32.Mat4, bg colorful.Color, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(float32(bg.R), float32(bg.G), float32(bg.B), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.UniformMatrix4fv(r.uViewProj, 1, false, &viewProj[0])
	gl.Uniform1f(r.uSize, r.size)
	gl.Uniform3f(r.uColor, float32(r.color.R), float32(r.color.G), float32(r.color.B))
}

// DrawParticles draws count instances from buf (x, y, z, alpha each).
// Sprites blend over each other without writing depth.
func (r *Renderer) DrawParticles(buf []float32, count int) {
	count = min(count, len(buf)/swarm.InstanceStride)
	if count <= 0 {
		return
	}

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, count*swarm.InstanceStride*4, gl.Ptr(buf), gl.STREAM_DRAW)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.DrawArraysInstanced(gl.TRIANGLES, 0, 6, int32(count))

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
