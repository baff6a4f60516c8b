package options

type Options struct {
	NumPoints *int
	Seed      *int64
	Width     *int
	Height    *int
	Title     *string
	Segments  *int
	PointSize *float64 // octagon radius in clip-space units

	// Recording options
	Record     *bool
	Duration   *float64
	FPS        *int
	OutputFile *string
	FFMPEGPath *string
}
