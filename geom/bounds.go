package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds3D is an axis-aligned box in 3D space.
type Bounds3D struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBounds3D creates a box from two corner points, swapping components where
// needed so Min <= Max holds on every axis.
func NewBounds3D(min, max mgl64.Vec3) Bounds3D {
	return Bounds3D{
		Min: mgl64.Vec3{
			math.Min(min.X(), max.X()),
			math.Min(min.Y(), max.Y()),
			math.Min(min.Z(), max.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(min.X(), max.X()),
			math.Max(min.Y(), max.Y()),
			math.Max(min.Z(), max.Z()),
		},
	}
}

// Bounds3DFromCenterSize creates a box centered on center with the given
// extent per axis.
func Bounds3DFromCenterSize(center, size mgl64.Vec3) Bounds3D {
	half := size.Mul(0.5)
	return NewBounds3D(center.Sub(half), center.Add(half))
}

// Size returns the extent of the box per axis.
func (b Bounds3D) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Bounds3D) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Volume returns the enclosed volume.
func (b Bounds3D) Volume() float64 {
	s := b.Size()
	return s.X() * s.Y() * s.Z()
}

// ContainsPoint checks if a point is inside the box
func (b Bounds3D) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= b.Min.X() && point.X() <= b.Max.X() &&
		point.Y() >= b.Min.Y() && point.Y() <= b.Max.Y() &&
		point.Z() >= b.Min.Z() && point.Z() <= b.Max.Z()
}

// Overlaps checks if two boxes overlap
func (b Bounds3D) Overlaps(other Bounds3D) bool {
	// Boxes overlap if they overlap on all three axes
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Min.Z() && b.Min.Z() <= other.Max.Z()
}

// ExpandToInclude grows the box just enough to contain point.
func (b Bounds3D) ExpandToInclude(point mgl64.Vec3) Bounds3D {
	return Bounds3D{
		Min: mgl64.Vec3{
			math.Min(b.Min.X(), point.X()),
			math.Min(b.Min.Y(), point.Y()),
			math.Min(b.Min.Z(), point.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(b.Max.X(), point.X()),
			math.Max(b.Max.Y(), point.Y()),
			math.Max(b.Max.Z(), point.Z()),
		},
	}
}

// Intersection returns the overlapping region of two boxes, or false when
// they do not overlap.
func (b Bounds3D) Intersection(other Bounds3D) (Bounds3D, bool) {
	if !b.Overlaps(other) {
		return Bounds3D{}, false
	}
	return Bounds3D{
		Min: mgl64.Vec3{
			math.Max(b.Min.X(), other.Min.X()),
			math.Max(b.Min.Y(), other.Min.Y()),
			math.Max(b.Min.Z(), other.Min.Z()),
		},
		Max: mgl64.Vec3{
			math.Min(b.Max.X(), other.Max.X()),
			math.Min(b.Max.Y(), other.Max.Y()),
			math.Min(b.Max.Z(), other.Max.Z()),
		},
	}, true
}

// Union returns the smallest box containing both boxes.
func (b Bounds3D) Union(other Bounds3D) Bounds3D {
	return b.ExpandToInclude(other.Min).ExpandToInclude(other.Max)
}
