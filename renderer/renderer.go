package renderer

import (
	"fmt"
	"sync"
	"time"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/glowfield/megapoints/glfwcontext"
	options "github.com/glowfield/megapoints/options"
)

var glInitOnce sync.Once

// Renderer owns the GL objects for the point-cloud pipeline: one static
// vertex buffer holding the whole cloud and one program with a
// vertex/geometry/fragment stage triple.
type Renderer struct {
	context    *glfwcontext.Context
	opts       *options.Options
	program    uint32
	vao        uint32
	vbo        uint32
	mvpLoc     int32
	resLoc     int32
	pointCount int32
	offscreen  *offscreenRenderer
}

func NewRenderer(opts *options.Options, visible bool) (*Renderer, error) {
	r := &Renderer{opts: opts}

	var err error
	r.context, err = glfwcontext.New(opts, visible)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize glfw context: %w", err)
	}

	var glErr error
	glInitOnce.Do(func() { glErr = gl.Init() })
	if glErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", glErr)
	}

	return r, nil
}

const bytesPerPoint = 2 * 4 // two float32 coordinates

// InitScene uploads the cloud into a static buffer, builds the shader
// program, resolves its uniform and attribute locations, and enables
// source-over blending so overlapping translucent points accumulate.
// The buffer is written once and never updated.
func (r *Renderer) InitScene(cloud []mgl32.Vec2) error {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	var data unsafe.Pointer
	if len(cloud) > 0 {
		data = gl.Ptr(cloud)
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(cloud)*bytesPerPoint, data, gl.STATIC_DRAW)

	var err error
	r.program, err = newProgram(*r.opts.Segments, float32(*r.opts.PointSize))
	if err != nil {
		return err
	}

	r.mvpLoc = gl.GetUniformLocation(r.program, gl.Str("MVP\x00"))
	r.resLoc = gl.GetUniformLocation(r.program, gl.Str("Resolution\x00"))
	posLoc := uint32(gl.GetAttribLocation(r.program, gl.Str("vPos\x00")))
	gl.EnableVertexAttribArray(posLoc)
	gl.VertexAttribPointer(posLoc, 2, gl.FLOAT, false, bytesPerPoint, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.pointCount = int32(len(cloud))
	return nil
}

// drawFrame renders all points under the rotation for time t. The viewport
// follows the framebuffer size while the Resolution uniform carries the
// window size, matching what the aspect correction in the geometry stage
// expects.
func (r *Renderer) drawFrame(t float64, fbWidth, fbHeight, resWidth, resHeight int) {
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	mvp := MVP(fbWidth, fbHeight, float32(t))

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0])
	gl.Uniform2i(r.resLoc, int32(resWidth), int32(resHeight))
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.POINTS, 0, r.pointCount)
	gl.BindVertexArray(0)
}

// Run is the interactive render loop. Every frame re-marks the redraw flag,
// so the cloud spins continuously; the idle sleep only triggers if a frame
// is ever skipped.
func (r *Renderer) Run() {
	view := r.context.View()
	fps := newFPSCounter(time.Now())

	for !r.context.ShouldClose() {
		if view.NeedRedraw() {
			view.ClearRedraw()

			fbWidth, fbHeight := r.context.GetFramebufferSize()
			r.drawFrame(r.context.Time(), fbWidth, fbHeight, view.Width, view.Height)
			r.context.SwapBuffers()

			if n, ok := fps.Tick(time.Now()); ok {
				fmt.Printf("FPS=%d\r", n)
			}

			// Continuous rotation: schedule the next frame immediately.
			view.MarkRedraw()
		} else {
			time.Sleep(time.Millisecond)
		}
		r.context.PollEvents()
	}
}

func (r *Renderer) Shutdown() {
	if r.offscreen != nil {
		r.offscreen.Destroy()
	}
	gl.DeleteProgram(r.program)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	r.context.Shutdown()
}
