package server

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/df07/go-direct-raytracer/pkg/integrator"
	"github.com/df07/go-direct-raytracer/pkg/output"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string                  `json:"scene"`
	Width   int                     `json:"width"`
	Height  int                     `json:"height"`
	Mode    integrator.LightingMode `json:"mode"`
	Shadows bool                    `json:"shadows"`
	Thumb   int                     `json:"thumb"` // Longest side of the returned image; 0 returns full size
	Yaw     float64                 `json:"yaw"`
	Pitch   float64                 `json:"pitch"`
	FOV     float64                 `json:"fov"` // 0 keeps the scene default
}

var renderCounter atomic.Int64

// handleRender renders one frame and returns it as PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "use GET")
		return
	}

	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", renderCounter.Add(1))
	logger := NewRenderLogger(renderID)
	logger.Printf("Rendering scene %s (%d primitives)", req.Scene, sceneObj.PrimitiveCount())

	rt, err := renderer.NewRenderer(req.Width, req.Height, s.workers, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	stats := rt.Render(sceneObj, integrator.Config{Shadows: req.Shadows, Mode: req.Mode})

	img := rt.Image()
	var buf bytes.Buffer
	if req.Thumb > 0 {
		err = output.Encode(&buf, output.Thumbnail(img, uint(req.Thumb)), "png")
	} else {
		err = output.Encode(&buf, img, "png")
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", output.ContentType("png"))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Stats", stats.String())
	w.Header().Set("X-Render-Log", logger.Summary())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// createScene builds the requested scene and points its camera
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Create(req.Scene, scene.Options{MeshPath: s.meshPath})
	if err != nil {
		return nil, err
	}

	camera := sceneObj.Camera()
	if req.FOV > 0 {
		camera.SetFOV(req.FOV)
	}
	camera.Rotate(req.Pitch, req.Yaw)
	return sceneObj, nil
}

// parseRenderRequest parses query parameters, applying defaults for missing ones
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "reference"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 640, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 480, 1, 2000); err != nil {
		return nil, err
	}
	if req.Thumb, err = parseIntParam(values, "thumb", 0, 0, 2000); err != nil {
		return nil, err
	}
	if req.Yaw, err = parseFloatParam(values, "yaw", 0, -360, 360); err != nil {
		return nil, err
	}
	if req.Pitch, err = parseFloatParam(values, "pitch", 0, -90, 90); err != nil {
		return nil, err
	}
	if req.FOV, err = parseFloatParam(values, "fov", 0, 0, 179); err != nil {
		return nil, err
	}
	if req.Shadows, err = parseBoolParam(values, "shadows", true); err != nil {
		return nil, err
	}

	req.Mode = integrator.Combined
	if mode := values.Get("mode"); mode != "" {
		if req.Mode, err = integrator.ParseLightingMode(mode); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
