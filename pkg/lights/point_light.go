package lights

import "rayscene/pkg/core"

// PointLight is an infinitesimal light source radiating equally in all
// directions. Intensity is a per-channel radiant intensity and may exceed 1.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
