package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{
			name:     "Axis vector",
			vector:   NewVec3(3, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "Diagonal vector",
			vector:   NewVec3(1, 1, 1),
			expected: NewVec3(1/math.Sqrt(3), 1/math.Sqrt(3), 1/math.Sqrt(3)),
		},
		{
			name:     "Zero vector stays zero",
			vector:   NewVec3(0, 0, 0),
			expected: NewVec3(0, 0, 0),
		},
		{
			name:     "Negative components",
			vector:   NewVec3(0, -2, 0),
			expected: NewVec3(0, -1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_NormalizeIdempotent(t *testing.T) {
	// Normalizing a unit vector must return it unchanged
	directions := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 2, 3).Normalize(),
		NewVec3(-4, 0.5, 7).Normalize(),
	}

	const tolerance = 1e-12
	for _, d := range directions {
		result := d.Normalize()
		if result.Subtract(d).Length() > tolerance {
			t.Errorf("Normalize not idempotent for %v: got %v", d, result)
		}
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{
			name:     "X cross Y is Z",
			a:        NewVec3(1, 0, 0),
			b:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "Y cross X is negative Z",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(1, 0, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "Parallel vectors give zero",
			a:        NewVec3(2, 2, 2),
			b:        NewVec3(1, 1, 1),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	result := v.Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)

	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestVec3_MultiplyVec(t *testing.T) {
	a := NewVec3(1, 0.5, 0)
	b := NewVec3(2, 2, 2)
	result := a.MultiplyVec(b)
	expected := NewVec3(2, 1, 0)

	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))
	result := ray.At(4)
	expected := NewVec3(0, 0, 1)

	if result.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}
