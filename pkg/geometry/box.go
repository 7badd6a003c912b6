package geometry

import (
	"math"

	"rayscene/pkg/core"
)

// Box represents an axis-aligned box defined by its minimum and maximum
// corners, with a flat surface color
type Box struct {
	Min   core.Vec3
	Max   core.Vec3
	Color core.Vec3
}

// NewBox creates a new axis-aligned box from min and max corners
func NewBox(minCorner, maxCorner, color core.Vec3) *Box {
	return &Box{
		Min:   minCorner,
		Max:   maxCorner,
		Color: color,
	}
}

// Hit tests if a ray intersects with the box using the slab method
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var minVal, maxVal, origin, direction float64

		switch axis {
		case 0: // X axis
			minVal = b.Min.X
			maxVal = b.Max.X
			origin = ray.Origin.X
			direction = ray.Direction.X
		case 1: // Y axis
			minVal = b.Min.Y
			maxVal = b.Max.Y
			origin = ray.Origin.Y
			direction = ray.Direction.Y
		case 2: // Z axis
			minVal = b.Min.Z
			maxVal = b.Max.Z
			origin = ray.Origin.Z
			direction = ray.Direction.Z
		}

		// Ray parallel to this axis: intersection is only possible if the
		// origin already lies between the two slab planes, in which case
		// the axis leaves the interval unconstrained
		if math.Abs(direction) < core.Epsilon {
			if origin < minVal || origin > maxVal {
				return nil, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (minVal - origin) * invDirection
		t2 := (maxVal - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tNear = math.Max(tNear, t1)
		tFar = math.Min(tFar, t2)
		if tNear > tFar {
			return nil, false
		}
	}

	// Box entirely behind the ray
	if tFar < tMin {
		return nil, false
	}

	// tNear is the entry point; when the origin is inside the box the
	// entry point is behind the ray and the exit point is the hit
	t := tNear
	if t < tMin {
		t = tFar
	}
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	return &core.HitRecord{
		T:      t,
		Point:  point,
		Normal: b.normalAt(point),
		Color:  b.Color,
	}, true
}

// normalAt derives the face normal by checking which bounding plane the hit
// point lies on. The fixed -x,+x,-y,+y,-z,+z precedence only matters at
// exact corner and edge grazes.
func (b *Box) normalAt(point core.Vec3) core.Vec3 {
	switch {
	case math.Abs(point.X-b.Min.X) < core.Epsilon:
		return core.NewVec3(-1, 0, 0)
	case math.Abs(point.X-b.Max.X) < core.Epsilon:
		return core.NewVec3(1, 0, 0)
	case math.Abs(point.Y-b.Min.Y) < core.Epsilon:
		return core.NewVec3(0, -1, 0)
	case math.Abs(point.Y-b.Max.Y) < core.Epsilon:
		return core.NewVec3(0, 1, 0)
	case math.Abs(point.Z-b.Min.Z) < core.Epsilon:
		return core.NewVec3(0, 0, -1)
	default:
		return core.NewVec3(0, 0, 1)
	}
}
