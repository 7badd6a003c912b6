package scene

import (
	"testing"

	"rayscene/pkg/renderer"
)

// Compile-time check that Scene satisfies the renderer's scene interface
var _ renderer.Scene = (*Scene)(nil)

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if s.GetCamera() == nil {
		t.Fatal("Default scene must have a camera")
	}
	if len(s.GetShapes()) == 0 {
		t.Error("Default scene should contain shapes")
	}
	if len(s.GetLights()) == 0 {
		t.Error("Default scene should contain lights")
	}
	if s.CameraConfig.Width <= 0 || s.CameraConfig.Height <= 0 {
		t.Errorf("Default scene raster should be positive, got %dx%d",
			s.CameraConfig.Width, s.CameraConfig.Height)
	}
}

func TestDefaultSceneRenders(t *testing.T) {
	s := NewDefaultScene()
	raytracer := renderer.NewRaytracer(s, nil)

	pixels, stats := raytracer.Render(1)

	if len(pixels) != s.CameraConfig.Height {
		t.Fatalf("Expected %d rows, got %d", s.CameraConfig.Height, len(pixels))
	}
	if stats.HitPixels == 0 {
		t.Error("Default scene render should hit at least one shape")
	}
}
