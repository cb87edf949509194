package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	NeedsMesh   bool   `json:"needsMesh"` // Loads a model from disk
}

// Options configures scene construction
type Options struct {
	MeshPath string // Model for mesh scenes; DefaultMeshPath when empty
}

type builder struct {
	info  SceneInfo
	build func(Options) (*Scene, error)
}

var builtInScenes = map[string]builder{
	"reference": {
		info: SceneInfo{
			ID:          "reference",
			DisplayName: "Reference Room",
			Description: "Cook-Torrance spheres and one triangle per cull mode in a lit room",
		},
		build: func(Options) (*Scene, error) { return NewReferenceScene(), nil },
	},
	"spheres": {
		info: SceneInfo{
			ID:          "spheres",
			DisplayName: "Phong Spheres",
			Description: "Lambert and Phong spheres lit by a point and a directional light",
		},
		build: func(Options) (*Scene, error) { return NewSpheresScene(), nil },
	},
	"mesh": {
		info: SceneInfo{
			ID:          "mesh",
			DisplayName: "Triangle Mesh",
			Description: "Triangle mesh loaded from OBJ or PLY in the reference room",
			NeedsMesh:   true,
		},
		build: func(opts Options) (*Scene, error) { return NewMeshScene(opts.MeshPath) },
	},
}

// Names returns the IDs of all built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtInScenes))
	for name := range builtInScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns metadata for all built-in scenes, sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtInScenes))
	for _, name := range Names() {
		infos = append(infos, builtInScenes[name].info)
	}
	return infos
}

// Create builds the named scene
func Create(name string, opts Options) (*Scene, error) {
	b, ok := builtInScenes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return b.build(opts)
}
