package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Circle is a circle in 2D space.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

// NewCircle creates a circle. The radius is clamped to be non-negative.
func NewCircle(center mgl64.Vec2, radius float64) Circle {
	return Circle{Center: center, Radius: math.Max(radius, 0)}
}

// Area returns the enclosed area.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns the length of the outline.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// Contains checks if a point is inside the circle, boundary included.
func (c Circle) Contains(point mgl64.Vec2) bool {
	return point.Sub(c.Center).Len() <= c.Radius
}

// Intersects checks if two circles overlap.
func (c Circle) Intersects(other Circle) bool {
	return c.Center.Sub(other.Center).Len() <= c.Radius+other.Radius
}

// IntersectsRect checks if the circle overlaps a rectangle, by comparing the
// circle's center against the closest point of the rectangle.
func (c Circle) IntersectsRect(r Rect) bool {
	closest := mgl64.Vec2{
		math.Max(r.Min.X(), math.Min(c.Center.X(), r.Max.X())),
		math.Max(r.Min.Y(), math.Min(c.Center.Y(), r.Max.Y())),
	}
	return c.Center.Sub(closest).Len() <= c.Radius
}

// BoundingRect returns the smallest rectangle containing the circle.
func (c Circle) BoundingRect() Rect {
	half := mgl64.Vec2{c.Radius, c.Radius}
	return Rect{Min: c.Center.Sub(half), Max: c.Center.Add(half)}
}
