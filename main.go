package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-direct-raytracer/pkg/config"
	"github.com/df07/go-direct-raytracer/pkg/integrator"
	"github.com/df07/go-direct-raytracer/pkg/output"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	meshPath  string
	width     int
	height    int
	fov       float64 // 0 keeps the scene's field of view
	yaw       float64
	pitch     float64
	mode      integrator.LightingMode
	shadows   bool
	frames    int
	step      float64 // Seconds of scene time between frames
	out       string
	thumb     uint
	upload    bool
	envFile   string
	workers   int // -1 defers to the environment
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	var mode string

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.sceneName, "scene", "reference", "Scene: "+strings.Join(scene.Names(), ", "))
	fs.StringVar(&opts.meshPath, "obj", "", "OBJ or PLY model for the mesh scene (default "+scene.DefaultMeshPath+")")
	fs.IntVar(&opts.width, "width", 640, "Image width in pixels")
	fs.IntVar(&opts.height, "height", 480, "Image height in pixels")
	fs.Float64Var(&opts.fov, "fov", 0, "Vertical field of view in degrees (0 keeps the scene default)")
	fs.Float64Var(&opts.yaw, "yaw", 0, "Camera yaw in degrees, positive turns right")
	fs.Float64Var(&opts.pitch, "pitch", 0, "Camera pitch in degrees, positive looks up")
	fs.StringVar(&mode, "mode", integrator.Combined.String(), "Lighting mode: observed-area, radiance, brdf or combined")
	fs.BoolVar(&opts.shadows, "shadows", true, "Trace shadow rays")
	fs.IntVar(&opts.frames, "frames", 1, "Number of frames to render; meshes turn between frames")
	fs.Float64Var(&opts.step, "step", 0.125, "Scene time in seconds between frames")
	fs.StringVar(&opts.out, "out", output.DefaultFilename, "Output image, relative to the output directory unless absolute")
	fs.UintVar(&opts.thumb, "thumb", 0, "Also write a thumbnail no larger than this many pixels (0 disables)")
	fs.BoolVar(&opts.upload, "upload", false, "Upload each frame to the configured S3 bucket")
	fs.StringVar(&opts.envFile, "env", ".env", "Environment file with output and S3 settings")
	fs.IntVar(&opts.workers, "workers", -1, "Worker goroutines (0 = one per CPU, -1 = from environment)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	var err error
	if opts.mode, err = integrator.ParseLightingMode(mode); err != nil {
		return opts, err
	}
	if opts.width <= 0 || opts.height <= 0 {
		return opts, fmt.Errorf("image size must be positive, got %dx%d", opts.width, opts.height)
	}
	if opts.frames < 1 {
		return opts, fmt.Errorf("frames must be at least 1, got %d", opts.frames)
	}
	if opts.fov < 0 || opts.fov >= 180 {
		return opts, fmt.Errorf("fov must be below 180 degrees and not negative, got %g", opts.fov)
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(2)
	}

	if err := run(context.Background(), opts); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// run renders every requested frame, saving and optionally uploading each one
func run(ctx context.Context, opts options) error {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}

	var uploader *output.S3Uploader
	if opts.upload {
		if !cfg.S3Enabled() {
			return fmt.Errorf("upload requested but %s is not set", config.EnvS3Bucket)
		}
		uploader, err = output.NewS3Uploader(output.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Prefix:    cfg.S3Prefix,
		})
		if err != nil {
			return err
		}
	}

	s, err := scene.Create(opts.sceneName, scene.Options{MeshPath: opts.meshPath})
	if err != nil {
		return err
	}
	camera := s.Camera()
	if opts.fov > 0 {
		camera.SetFOV(opts.fov)
	}
	camera.Rotate(opts.pitch, opts.yaw)

	workers := opts.workers
	if workers < 0 {
		workers = cfg.Workers
	}
	r, err := renderer.NewRenderer(opts.width, opts.height, workers, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	log.Printf("Scene %s: %d primitives, %d lights", opts.sceneName, s.PrimitiveCount(), len(s.Lights()))
	if bounds, ok := s.Bounds(); ok {
		log.Printf("Scene bounds: %v to %v", bounds.Min, bounds.Max)
	}

	renderCfg := integrator.Config{Shadows: opts.shadows, Mode: opts.mode}
	filename := opts.out
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(cfg.OutputDir, filename)
	}

	start := time.Now()
	for frame := 0; frame < opts.frames; frame++ {
		s.Update(float64(frame) * opts.step)
		r.Render(s, renderCfg)

		name := filename
		if opts.frames > 1 {
			name = output.FrameFilename(filename, frame)
		}
		if err := saveFrame(ctx, r.Image(), name, opts.thumb, uploader); err != nil {
			return err
		}
	}

	log.Printf("Rendered %d frame(s) in %v", opts.frames, time.Since(start))
	return nil
}

type namedImage struct {
	name string
	img  image.Image
}

// saveFrame writes img (and its thumbnail) to disk, then uploads them when an uploader is set
func saveFrame(ctx context.Context, img image.Image, filename string, thumb uint, uploader *output.S3Uploader) error {
	images := []namedImage{{filename, img}}
	if thumb > 0 {
		images = append(images, namedImage{thumbnailFilename(filename), output.Thumbnail(img, thumb)})
	}

	for _, item := range images {
		if err := output.Save(item.img, item.name); err != nil {
			return err
		}
		log.Printf("Saved %s", item.name)

		if uploader != nil {
			if err := uploader.UploadImage(ctx, filepath.Base(item.name), item.img); err != nil {
				return err
			}
		}
	}
	return nil
}

// thumbnailFilename turns render.bmp into render_thumb.bmp
func thumbnailFilename(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "_thumb" + ext
}
