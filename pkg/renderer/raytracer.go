package renderer

import (
	"math"
	"time"

	"rayscene/pkg/core"
	"rayscene/pkg/lights"
)

// ambientCoefficient scales the surface albedo for the ambient term
const ambientCoefficient = 0.1

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetShapes() []core.Shape
	GetLights() []lights.PointLight
}

// Raytracer computes direct illumination for a scene: nearest-hit
// intersection, hard shadows, and ambient plus Lambertian diffuse shading.
// No recursion, so no reflection or refraction rays.
type Raytracer struct {
	scene  Scene
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger disables logging.
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:  scene,
		logger: logger,
	}
}

// hitWorld finds the nearest intersection along the ray, scanning all
// shapes linearly. Ties go to the shape encountered first.
func (rt *Raytracer) hitWorld(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range rt.scene.GetShapes() {
		// Shapes accept hits at exactly closestSoFar, so require a
		// strictly smaller T to keep the first shape on a distance tie
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit && (!hitAnything || hit.T < closestSoFar) {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// isOccluded reports whether anything blocks the shadow ray before it
// reaches the light at the given distance.
func (rt *Raytracer) isOccluded(shadowRay core.Ray, lightDistance float64) bool {
	for _, shape := range rt.scene.GetShapes() {
		if hit, isHit := shape.Hit(shadowRay, core.Epsilon, lightDistance); isHit && hit.T < lightDistance {
			return true
		}
	}
	return false
}

// TraceRay computes the color seen along a single ray
func (rt *Raytracer) TraceRay(ray core.Ray) core.Vec3 {
	color, _ := rt.rayColor(ray)
	return color
}

// rayColor shades the nearest intersection and reports whether the ray hit
// anything at all. Misses return the black background.
func (rt *Raytracer) rayColor(ray core.Ray) (core.Vec3, bool) {
	hit, isHit := rt.hitWorld(ray, core.Epsilon, math.Inf(1))
	if !isHit {
		return core.NewVec3(0, 0, 0), false
	}

	color := hit.Color.Multiply(ambientCoefficient)

	for _, light := range rt.scene.GetLights() {
		toLight := light.Position.Subtract(hit.Point)
		lightDistance := toLight.Length()
		lightDir := toLight.Normalize()

		// Offset the shadow origin along the normal to avoid the shadow
		// ray immediately re-hitting the surface it starts on
		shadowOrigin := hit.Point.Add(hit.Normal.Multiply(core.Epsilon))
		if rt.isOccluded(core.NewRay(shadowOrigin, lightDir), lightDistance) {
			continue
		}

		diffuse := math.Max(hit.Normal.Dot(lightDir), 0.0)
		color = color.Add(hit.Color.MultiplyVec(light.Intensity).Multiply(diffuse))
	}

	return color.Clamp(0.0, 1.0), true
}

// renderRow renders one raster row into the given pixel slice and returns
// the number of primary rays that hit a shape
func (rt *Raytracer) renderRow(j int, row []core.Vec3) int {
	camera := rt.scene.GetCamera()
	hits := 0

	for i := range row {
		color, isHit := rt.rayColor(camera.GetRay(i, j))
		row[i] = color
		if isHit {
			hits++
		}
	}

	return hits
}

// Render traces every pixel of the camera raster and returns the pixel grid
// in row-major order with row 0 at the top. Rows are distributed across
// numWorkers goroutines; zero or negative selects one worker per CPU. Each
// pixel is computed independently and deterministically, so the output is
// identical for any worker count.
func (rt *Raytracer) Render(numWorkers int) ([][]core.Vec3, RenderStats) {
	camera := rt.scene.GetCamera()
	width, height := camera.Width(), camera.Height()
	startTime := time.Now()

	pixels := make([][]core.Vec3, height)
	for j := range pixels {
		pixels[j] = make([]core.Vec3, width)
	}

	pool := NewWorkerPool(rt, numWorkers, height)
	pool.Start()

	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{Row: j, Pixels: pixels[j]})
	}
	pool.Stop()

	stats := RenderStats{
		Width:       width,
		Height:      height,
		TotalPixels: width * height,
	}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.HitPixels += result.Hits
	}
	stats.ShadowRays = stats.HitPixels * len(rt.scene.GetLights())
	stats.Elapsed = time.Since(startTime)

	if rt.logger != nil {
		rt.logger.Printf("Rendered %dx%d pixels in %v (%d workers, %d hits)\n",
			width, height, stats.Elapsed, pool.GetNumWorkers(), stats.HitPixels)
	}

	return pixels, stats
}
