package main

import (
	"flag"
	"log"
	"math/rand"
	"runtime"

	glfwcontext "github.com/glowfield/megapoints/glfwcontext"
	options "github.com/glowfield/megapoints/options"
	points "github.com/glowfield/megapoints/points"
	renderer "github.com/glowfield/megapoints/renderer"
	shader "github.com/glowfield/megapoints/shader"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := &options.Options{
		NumPoints: flag.Int("points", points.DefaultCount, "number of points to generate"),
		Seed:      flag.Int64("seed", 1, "random seed for point generation"),
		Width:     flag.Int("width", 1024, "window width"),
		Height:    flag.Int("height", 768, "window height"),
		Title:     flag.String("title", "One Hundred Million Points", "window title"),
		Segments:  flag.Int("segments", shader.DefaultSegments, "segment count of the expanded points"),
		PointSize: flag.Float64("size", shader.DefaultPointSize, "point radius in clip-space units"),

		Record:     flag.Bool("record", false, "render to a video file instead of a window"),
		Duration:   flag.Float64("duration", 10.0, "duration to record in seconds"),
		FPS:        flag.Int("fps", 60, "frames per second for recording"),
		OutputFile: flag.String("output", "output.mp4", "output file name for recording"),
		FFMPEGPath: flag.String("ffmpeg", "", "path to ffmpeg executable"),
	}
	flag.Parse()

	rng := rand.New(rand.NewSource(*opts.Seed))
	cloud := points.Generate(*opts.NumPoints, rng)
	meanR, stddevR := points.Stats(cloud)
	log.Printf("Ring radius mean=%.4f stddev=%.4f", meanR, stddevR)

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	r, err := renderer.NewRenderer(opts, !*opts.Record)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Shutdown()

	if err := r.InitScene(cloud); err != nil {
		log.Fatalf("%v", err)
	}

	if *opts.Record {
		if err := r.RunOffscreen(); err != nil {
			log.Fatalf("Offscreen rendering failed: %v", err)
		}
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
	} else {
		log.Println("Starting interactive render loop...")
		r.Run()
	}
}
