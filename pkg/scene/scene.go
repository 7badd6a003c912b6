package scene

import (
	"rayscene/pkg/core"
	"rayscene/pkg/lights"
	"rayscene/pkg/renderer"
)

// Scene contains all the elements needed for rendering: the camera, the
// shape list and the light list. It is constructed once and never mutated
// afterwards, which is what makes lock-free parallel pixel evaluation safe.
type Scene struct {
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	Shapes       []core.Shape
	Lights       []lights.PointLight
}

// NewScene creates a scene from a camera configuration, shapes and lights
func NewScene(cameraConfig renderer.CameraConfig, shapes []core.Shape, sceneLights []lights.PointLight) *Scene {
	return &Scene{
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Shapes:       shapes,
		Lights:       sceneLights,
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetShapes returns the shapes in the scene
func (s *Scene) GetShapes() []core.Shape {
	return s.Shapes
}

// GetLights returns the point lights in the scene
func (s *Scene) GetLights() []lights.PointLight {
	return s.Lights
}
