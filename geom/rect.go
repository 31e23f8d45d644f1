package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rect is an axis-aligned rectangle in 2D space, stored as its minimum
// (bottom-left) and maximum (top-right) corners.
type Rect struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// NewRect creates a rectangle from two corner points, swapping components
// where needed so Min <= Max holds on both axes.
func NewRect(min, max mgl64.Vec2) Rect {
	return Rect{
		Min: mgl64.Vec2{math.Min(min.X(), max.X()), math.Min(min.Y(), max.Y())},
		Max: mgl64.Vec2{math.Max(min.X(), max.X()), math.Max(min.Y(), max.Y())},
	}
}

// RectFromCenterSize creates a rectangle centered on center.
func RectFromCenterSize(center, size mgl64.Vec2) Rect {
	half := size.Mul(0.5)
	return NewRect(center.Sub(half), center.Add(half))
}

// RectFromPositionSize creates a rectangle whose bottom-left corner is position.
func RectFromPositionSize(position, size mgl64.Vec2) Rect {
	return NewRect(position, position.Add(size))
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X() - r.Min.X()
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y() - r.Min.Y()
}

// Size returns the extent per axis.
func (r Rect) Size() mgl64.Vec2 {
	return r.Max.Sub(r.Min)
}

// Center returns the midpoint.
func (r Rect) Center() mgl64.Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// Area returns the enclosed area.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Perimeter returns the length of the outline.
func (r Rect) Perimeter() float64 {
	return 2 * (r.Width() + r.Height())
}

// Contains checks if a point is inside the rectangle, edges included.
func (r Rect) Contains(point mgl64.Vec2) bool {
	return point.X() >= r.Min.X() && point.X() <= r.Max.X() &&
		point.Y() >= r.Min.Y() && point.Y() <= r.Max.Y()
}

// Intersects checks if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Max.X() >= other.Min.X() && r.Min.X() <= other.Max.X() &&
		r.Max.Y() >= other.Min.Y() && r.Min.Y() <= other.Max.Y()
}

// IntersectsCircle checks if the rectangle overlaps a circle.
func (r Rect) IntersectsCircle(c Circle) bool {
	return c.IntersectsRect(r)
}

// Intersection returns the overlapping region, or false when the rectangles
// do not overlap.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	if !r.Intersects(other) {
		return Rect{}, false
	}
	return Rect{
		Min: mgl64.Vec2{math.Max(r.Min.X(), other.Min.X()), math.Max(r.Min.Y(), other.Min.Y())},
		Max: mgl64.Vec2{math.Min(r.Max.X(), other.Max.X()), math.Min(r.Max.Y(), other.Max.Y())},
	}, true
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: mgl64.Vec2{math.Min(r.Min.X(), other.Min.X()), math.Min(r.Min.Y(), other.Min.Y())},
		Max: mgl64.Vec2{math.Max(r.Max.X(), other.Max.X()), math.Max(r.Max.Y(), other.Max.Y())},
	}
}

// Expand grows the rectangle by amount on every side. A negative amount
// shrinks it.
func (r Rect) Expand(amount float64) Rect {
	d := mgl64.Vec2{amount, amount}
	return NewRect(r.Min.Sub(d), r.Max.Add(d))
}

// IsValid reports whether Min <= Max holds on both axes.
func (r Rect) IsValid() bool {
	return r.Min.X() <= r.Max.X() && r.Min.Y() <= r.Max.Y()
}
