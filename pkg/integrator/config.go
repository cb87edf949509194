package integrator

import (
	"fmt"
	"strings"
)

// LightingMode selects which terms of the direct lighting equation are accumulated
type LightingMode int

const (
	ObservedArea LightingMode = iota // cosine term only
	Radiance                         // incident radiance only
	BRDF                             // material response only
	Combined                         // radiance * cosine * BRDF
)

const lightingModeCount = 4

var lightingModeNames = [lightingModeCount]string{"observed-area", "radiance", "brdf", "combined"}

// Next returns the following mode, wrapping after Combined
func (m LightingMode) Next() LightingMode {
	return (m + 1) % lightingModeCount
}

func (m LightingMode) String() string {
	if m < 0 || m >= lightingModeCount {
		return fmt.Sprintf("LightingMode(%d)", int(m))
	}
	return lightingModeNames[m]
}

// ParseLightingMode converts a mode name such as "brdf" into a LightingMode
func ParseLightingMode(s string) (LightingMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range lightingModeNames {
		if n == name {
			return LightingMode(i), nil
		}
	}
	return Combined, fmt.Errorf("unknown lighting mode %q (want one of %s)", s, strings.Join(lightingModeNames[:], ", "))
}

// Config holds the render-time lighting toggles for one render call
type Config struct {
	Shadows bool
	Mode    LightingMode
}

// DefaultConfig returns shadows enabled with the combined lighting mode
func DefaultConfig() Config {
	return Config{Shadows: true, Mode: Combined}
}

// ToggleShadows flips shadow testing on or off
func (c *Config) ToggleShadows() {
	c.Shadows = !c.Shadows
}

// CycleLightingMode advances to the next lighting mode
func (c *Config) CycleLightingMode() {
	c.Mode = c.Mode.Next()
}

func (c Config) String() string {
	return fmt.Sprintf("mode=%s shadows=%t", c.Mode, c.Shadows)
}
