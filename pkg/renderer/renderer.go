package renderer

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/integrator"
)

// Scene interface to avoid circular imports
type Scene interface {
	integrator.Scene
	Camera() *Camera
}

// Renderer owns the pixel buffer and renders one sample per pixel into it
type Renderer struct {
	width      int
	height     int
	numWorkers int // 0 means runtime.NumCPU()
	spanSize   int
	buffer     []uint32
	logger     core.Logger
}

// NewRenderer creates a renderer for a width x height buffer
func NewRenderer(width, height, numWorkers int, logger core.Logger) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid resolution %dx%d", width, height)
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &Renderer{
		width:      width,
		height:     height,
		numWorkers: numWorkers,
		spanSize:   width,
		buffer:     make([]uint32, width*height),
		logger:     logger,
	}, nil
}

// SetSpanSize sets how many consecutive pixels each worker task covers
func (r *Renderer) SetSpanSize(n int) {
	if n > 0 {
		r.spanSize = n
	}
}

// Width returns the buffer width in pixels
func (r *Renderer) Width() int { return r.width }

// Height returns the buffer height in pixels
func (r *Renderer) Height() int { return r.height }

// Render traces every pixel of the scene with cfg and returns once the whole
// buffer is written. The scene and its camera must not change during the call.
func (r *Renderer) Render(scene Scene, cfg integrator.Config) RenderStats {
	start := time.Now()

	v := newView(scene.Camera(), r.width, r.height)
	total := len(r.buffer)
	numTasks := (total + r.spanSize - 1) / r.spanSize

	pool := NewWorkerPool(scene, cfg, v, r.buffer, r.numWorkers, numTasks)
	pool.Start()

	for id := 0; id < numTasks; id++ {
		end := min((id+1)*r.spanSize, total)
		pool.SubmitTask(SpanTask{TaskID: id, Start: id * r.spanSize, End: end})
	}
	pool.Stop()

	stats := RenderStats{
		Width:   r.width,
		Height:  r.height,
		Tasks:   numTasks,
		Workers: pool.GetNumWorkers(),
		Config:  cfg,
	}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.add(result.Stats)
	}
	stats.Duration = time.Since(start)

	r.logger.Printf("Rendered %s\n", stats)
	return stats
}

// Buffer returns the row-major 0x00RRGGBB pixels, index = px + py*width
func (r *Renderer) Buffer() []uint32 {
	return r.buffer
}

// Pixel returns the packed color at (px, py)
func (r *Renderer) Pixel(px, py int) uint32 {
	return r.buffer[px+py*r.width]
}

// Image converts the buffer to an opaque RGBA image
func (r *Renderer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for i, p := range r.buffer {
		red, green, blue := core.Unpack(p)
		img.SetRGBA(i%r.width, i/r.width, color.RGBA{R: red, G: green, B: blue, A: 255})
	}
	return img
}
