package lights

import "fmt"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// ParseLightType converts a name such as "point" into a LightType
func ParseLightType(s string) (LightType, error) {
	switch LightType(s) {
	case LightTypePoint, LightTypeDirectional:
		return LightType(s), nil
	}
	return "", fmt.Errorf("unknown light type %q", s)
}
