package geometry

import (
	"math"

	"rayscene/pkg/core"
)

// Sphere represents a sphere shape with a flat surface color
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Vec3
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / (2 * a)
	if root < tMin || root > tMax {
		// Try the farther intersection point
		root = (-b + sqrtD) / (2 * a)
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	return &core.HitRecord{
		T:      root,
		Point:  point,
		Normal: point.Subtract(s.Center).Normalize(),
		Color:  s.Color,
	}, true
}
