package renderer

import (
	"fmt"
	"io"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	options "github.com/glowfield/megapoints/options"
)

// frame represents a single rendered frame's data, ready for encoding.
type frame struct {
	pixels []byte
	pts    int64
}

type offscreenRenderer struct {
	fbo       uint32
	textureID uint32
	width     int
	height    int
}

func newOffscreenRenderer(width, height int) (*offscreenRenderer, error) {
	or := &offscreenRenderer{width: width, height: height}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.GenTextures(1, &or.textureID)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, or.textureID, 0)
	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		return nil, fmt.Errorf("offscreen fbo is not complete")
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	return or, nil
}

func (or *offscreenRenderer) Destroy() {
	gl.DeleteFramebuffers(1, &or.fbo)
	gl.DeleteTextures(1, &or.textureID)
}

func (or *offscreenRenderer) readPixels() []byte {
	pixels := make([]byte, or.width*or.height*4)
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// runEncoder is the consumer. It feeds raw RGBA frames from frameChan into
// an ffmpeg child process.
func (r *Renderer) runEncoder(opts *options.Options, frameChan <-chan *frame, doneChan chan<- error) {
	pipeReader, pipeWriter := io.Pipe()

	inputArgs := ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", *opts.Width, *opts.Height),
		"framerate": *opts.FPS,
	}
	outputArgs := ffmpeg.KwArgs{
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
		// ReadPixels returns rows bottom-up.
		"vf": "vflip",
	}

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*opts.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if *opts.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(*opts.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- ffmpegCmd.Run()
	}()

	for f := range frameChan {
		if _, err := pipeWriter.Write(f.pixels); err != nil {
			log.Printf("Error writing frame %d to pipe: %v", f.pts, err)
			break
		}
	}
	pipeWriter.Close()
	doneChan <- <-errc
}

// RunOffscreen is the producer. It renders a fixed number of frames at
// simulated timestamps into an FBO and sends them to the encoder.
func (r *Renderer) RunOffscreen() error {
	opts := r.opts
	log.Println("Starting in record mode...")

	var err error
	r.offscreen, err = newOffscreenRenderer(*opts.Width, *opts.Height)
	if err != nil {
		return err
	}

	frameChan := make(chan *frame, 3)
	doneChan := make(chan error, 1)
	go r.runEncoder(opts, frameChan, doneChan)

	totalFrames := int(*opts.Duration * float64(*opts.FPS))
	timeStep := 1.0 / float64(*opts.FPS)

	gl.BindFramebuffer(gl.FRAMEBUFFER, r.offscreen.fbo)
	for i := 0; i < totalFrames; i++ {
		simTime := float64(i) * timeStep
		r.drawFrame(simTime, r.offscreen.width, r.offscreen.height, r.offscreen.width, r.offscreen.height)
		frameChan <- &frame{pixels: r.offscreen.readPixels(), pts: int64(i)}
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	close(frameChan)
	return <-doneChan
}
