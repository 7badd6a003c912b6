package renderer

import (
	"math"

	"rayscene/pkg/core"
)

// CameraConfig holds camera configuration parameters
type CameraConfig struct {
	Center core.Vec3 // Camera position in world space
	LookAt core.Vec3 // Point the camera is aimed at
	Up     core.Vec3 // Up direction hint
	VFov   float64   // Vertical field of view in degrees
	Width  int       // Raster width in pixels
	Height int       // Raster height in pixels
}

// Camera generates world-space rays for pixel coordinates using a pinhole
// projection. It is immutable after construction.
type Camera struct {
	config     CameraConfig
	u, v, w    core.Vec3 // Orthonormal basis: right, true up, forward
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	w := config.LookAt.Subtract(config.Center).Normalize()
	u := w.Cross(config.Up).Normalize()
	v := u.Cross(w)

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	aspectRatio := float64(config.Width) / float64(config.Height)
	halfWidth := aspectRatio * halfHeight

	return &Camera{
		config:     config,
		u:          u,
		v:          v,
		w:          w,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// GetRay generates the ray through the center of pixel (i, j).
// Row 0 is the top of the image.
func (c *Camera) GetRay(i, j int) core.Ray {
	px := (2*((float64(i)+0.5)/float64(c.config.Width)) - 1) * c.halfWidth
	py := (1 - 2*((float64(j)+0.5)/float64(c.config.Height))) * c.halfHeight

	direction := c.w.Add(c.u.Multiply(px)).Add(c.v.Multiply(py)).Normalize()
	return core.NewRay(c.config.Center, direction)
}

// GetCameraForward returns the forward direction of the camera
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w
}

// Width returns the raster width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the raster height in pixels
func (c *Camera) Height() int {
	return c.config.Height
}
