package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-direct-raytracer/pkg/integrator"
)

// RenderStats contains statistics about one render pass
type RenderStats struct {
	Width       int
	Height      int
	TotalPixels int // Pixels written
	LitPixels   int // Pixels with a non-black color
	Tasks       int // Spans handed to the worker pool
	Workers     int
	Config      integrator.Config
	Duration    time.Duration
}

// SpanStats is the per-task contribution to RenderStats
type SpanStats struct {
	Pixels    int
	LitPixels int
}

// add merges a finished span into the pass totals
func (rs *RenderStats) add(s SpanStats) {
	rs.TotalPixels += s.Pixels
	rs.LitPixels += s.LitPixels
}

// Coverage returns the fraction of pixels that received light
func (rs RenderStats) Coverage() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.LitPixels) / float64(rs.TotalPixels)
}

func (rs RenderStats) String() string {
	return fmt.Sprintf("%dx%d %s, %d workers, %d tasks, %.1f%% lit, %v",
		rs.Width, rs.Height, rs.Config, rs.Workers, rs.Tasks, rs.Coverage()*100, rs.Duration)
}
