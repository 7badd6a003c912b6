package core

// HitRecord describes a ray/primitive intersection
type HitRecord struct {
	T      float64 // Distance along the ray, always > 0
	Point  Vec3    // World-space intersection point
	Normal Vec3    // Unit surface normal at the intersection
	Color  Vec3    // Surface albedo, nominally in [0,1] per channel
}

// Shape interface for objects that can be hit by rays.
// Hit returns the nearest intersection with T in [tMin, tMax],
// or false when the ray misses.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
