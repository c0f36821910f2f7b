//go:build !android

package render

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps the glfw window with the fullscreen toggle: F switches,
// Esc leaves fullscreen or, when windowed, closes.
type Window struct {
	*glfw.Window

	windowedX, windowedY int
	windowedW, windowedH int
}

// InitWindow creates a 4.1 core context window and makes it current.
func InitWindow(width, height int, title string, fullscreen bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	gw, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	gw.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &Window{Window: gw}
	w.windowedX, w.windowedY = gw.GetPos()
	w.windowedW, w.windowedH = width, height
	gw.SetKeyCallback(w.onKey)
	if fullscreen {
		w.SetFullscreen(true)
	}
	return w, nil
}

func (w *Window) Fullscreen() bool { return w.GetMonitor() != nil }

// SetFullscreen moves the window onto the primary monitor at its current
// video mode, or back to where it was.
func (w *Window) SetFullscreen(on bool) {
	if on == w.Fullscreen() {
		return
	}
	if on {
		w.windowedX, w.windowedY = w.GetPos()
		w.windowedW, w.windowedH = w.GetSize()
		m := glfw.GetPrimaryMonitor()
		if m == nil {
			return
		}
		mode := m.GetVideoMode()
		w.SetMonitor(m, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		return
	}
	w.SetMonitor(nil, w.windowedX, w.windowedY, w.windowedW, w.windowedH, glfw.DontCare)
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyF:
		w.SetFullscreen(!w.Fullscreen())
	case glfw.KeyEscape:
		if w.Fullscreen() {
			w.SetFullscreen(false)
		} else {
			w.SetShouldClose(true)
		}
	}
}

// Destroy closes the window and shuts glfw down.
func (w *Window) Destroy() {
	w.Window.Destroy()
	glfw.Terminate()
}
