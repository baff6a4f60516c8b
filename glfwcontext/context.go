package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	options "github.com/glowfield/megapoints/options"
)

// ViewState holds the window dimensions and the redraw flag. It is written
// by the GLFW callbacks and read by the render loop; both run on the main
// thread (callbacks fire synchronously during event polling), so no locking
// is needed.
type ViewState struct {
	Width      int
	Height     int
	needRedraw bool
}

func (v *ViewState) MarkRedraw() { v.needRedraw = true }

func (v *ViewState) ClearRedraw() { v.needRedraw = false }

func (v *ViewState) NeedRedraw() bool { return v.needRedraw }

// Context wraps a GLFW window and the view state its callbacks mutate.
type Context struct {
	window *glfw.Window
	view   *ViewState
}

// New creates the demo window with a 4.1 core profile context and installs
// the key/size/refresh callbacks. A hidden window is used when recording.
func New(opts *options.Options, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window: win,
		view:   &ViewState{Width: *opts.Width, Height: *opts.Height},
	}
	c.view.MarkRedraw()

	win.SetKeyCallback(c.keyCallback)
	win.SetSizeCallback(c.sizeCallback)
	win.SetRefreshCallback(c.refreshCallback)

	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	return c, nil
}

func (c *Context) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

func (c *Context) sizeCallback(w *glfw.Window, width, height int) {
	c.view.Width = width
	c.view.Height = height
	c.view.MarkRedraw()
}

// refreshCallback swaps immediately so the window repaints while it is being
// resized or re-exposed, then schedules a proper redraw.
func (c *Context) refreshCallback(w *glfw.Window) {
	c.window.SwapBuffers()
	c.view.MarkRedraw()
}

// View returns the callback-mutated view state.
func (c *Context) View() *ViewState { return c.view }

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() { c.window.MakeContextCurrent() }

func (c *Context) ShouldClose() bool { return c.window.ShouldClose() }

func (c *Context) SwapBuffers() { c.window.SwapBuffers() }

func (c *Context) PollEvents() { glfw.PollEvents() }

func (c *Context) GetFramebufferSize() (int, int) { return c.window.GetFramebufferSize() }

func (c *Context) Time() float64 { return glfw.GetTime() }

// Shutdown destroys the window.
func (c *Context) Shutdown() { c.window.Destroy() }

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
