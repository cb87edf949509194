package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/integrator"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit           bool                   `json:"hit"`
	MaterialType  string                 `json:"materialType"`
	MaterialIndex int                    `json:"materialIndex"`
	Point         [3]float64             `json:"point"`
	Normal        [3]float64             `json:"normal"`
	Distance      float64                `json:"distance"`
	Color         string                 `json:"color"` // Shaded pixel as #rrggbb
	Properties    map[string]interface{} `json:"properties"`
}

// extractMaterialInfo describes the parameters that matter for the material kind
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"color": hexColor(mat.Color),
	}

	switch mat.Kind {
	case material.KindLambert:
		properties["diffuseReflectance"] = mat.DiffuseReflectance
	case material.KindLambertPhong:
		properties["diffuseReflectance"] = mat.DiffuseReflectance
		properties["specularReflectance"] = mat.SpecularReflectance
		properties["phongExponent"] = mat.PhongExponent
	case material.KindCookTorrance:
		properties["metalness"] = mat.Metalness
		properties["roughness"] = mat.Roughness
	}
	return mat.Kind.String(), properties
}

func hexColor(c core.Color) string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// handleInspect traces the primary ray through one pixel and reports what it hit
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	req, err := parseRenderRequest(values)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	px, err := parseIntParam(values, "x", 0, 0, req.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	py, err := parseIntParam(values, "y", 0, 0, req.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ray := sceneObj.Camera().RayForPixel(px, py, req.Width, req.Height)
	hit := sceneObj.ClosestHit(ray)
	if !hit.DidHit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Color: hexColor(core.Black)})
		return
	}

	mat := sceneObj.Materials()[hit.MaterialIndex]
	materialType, properties := extractMaterialInfo(mat)
	shaded := integrator.Shade(sceneObj, hit, ray.Direction, integrator.Config{Shadows: req.Shadows, Mode: req.Mode})

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:           true,
		MaterialType:  materialType,
		MaterialIndex: hit.MaterialIndex,
		Point:         [3]float64{hit.Origin[0], hit.Origin[1], hit.Origin[2]},
		Normal:        [3]float64{hit.Normal[0], hit.Normal[1], hit.Normal[2]},
		Distance:      hit.T,
		Color:         hexColor(shaded),
		Properties:    properties,
	})
}
