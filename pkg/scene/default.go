package scene

import (
	"rayscene/pkg/core"
	"rayscene/pkg/geometry"
	"rayscene/pkg/lights"
	"rayscene/pkg/renderer"
)

// NewDefaultScene creates a built-in demo scene: a red sphere and a blue box
// on a large box floor, lit by a key light and a dim fill light
func NewDefaultScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center: core.NewVec3(0, 1.5, 6),
		LookAt: core.NewVec3(0, 0.5, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60.0,
		Width:  320,
		Height: 240,
	}

	shapes := []core.Shape{
		geometry.NewSphere(core.NewVec3(-1, 1, 0), 1.0, core.NewVec3(0.9, 0.2, 0.2)),
		geometry.NewBox(core.NewVec3(0.5, 0, -1), core.NewVec3(2.5, 2, 1), core.NewVec3(0.2, 0.3, 0.9)),
		// Floor: a thin box instead of an infinite plane
		geometry.NewBox(core.NewVec3(-50, -1, -50), core.NewVec3(50, 0, 50), core.NewVec3(0.8, 0.8, 0.8)),
	}

	sceneLights := []lights.PointLight{
		lights.NewPointLight(core.NewVec3(5, 8, 5), core.NewVec3(1, 1, 1)),
		lights.NewPointLight(core.NewVec3(-6, 4, 3), core.NewVec3(0.3, 0.3, 0.4)),
	}

	return NewScene(cameraConfig, shapes, sceneLights)
}
