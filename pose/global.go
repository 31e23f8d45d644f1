package pose

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// GlobalTransform is a world-space affine transform cached as a single 4x4
// matrix. It is derived from Transform values by hierarchy propagation and is
// never authored directly by game logic: treat it as read-only output.
type GlobalTransform struct {
	mat mgl64.Mat4
}

// GlobalIdentity returns the identity world transform.
func GlobalIdentity() GlobalTransform {
	return GlobalTransform{mat: mgl64.Ident4()}
}

// GlobalFromTransform promotes a local pose to a world transform, used for
// root entities whose local space is world space.
func GlobalFromTransform(t Transform) GlobalTransform {
	return GlobalTransform{mat: t.Mat4()}
}

// GlobalFromMat4 wraps a raw matrix as a world transform.
func GlobalFromMat4(m mgl64.Mat4) GlobalTransform {
	return GlobalTransform{mat: m}
}

// Mat4 returns the stored matrix.
func (g GlobalTransform) Mat4() mgl64.Mat4 {
	return g.mat
}

// Translation reads the position directly from the matrix's last column.
func (g GlobalTransform) Translation() mgl64.Vec3 {
	return g.mat.Col(3).Vec3()
}

// Rotation decomposes the stored matrix and returns its rotation. More
// expensive than Translation.
func (g GlobalTransform) Rotation() mgl64.Quat {
	return FromMat4(g.mat).Rotation
}

// Scale decomposes the stored matrix and returns its scale. More expensive
// than Translation.
func (g GlobalTransform) Scale() mgl64.Vec3 {
	return FromMat4(g.mat).Scale
}

// Mul composes g as parent with other as child. This is the operation the
// propagation pass uses to derive a child's world transform.
func (g GlobalTransform) Mul(other GlobalTransform) GlobalTransform {
	return GlobalTransform{mat: g.mat.Mul4(other.mat)}
}

// Inverse returns the inverse world transform, failing with ErrNonInvertible
// when the matrix is singular or the inversion produces non-finite values.
func (g GlobalTransform) Inverse() (GlobalTransform, error) {
	inv := g.mat.Inv()
	if inv == (mgl64.Mat4{}) {
		return GlobalTransform{}, fmt.Errorf("%w: matrix is singular", ErrNonInvertible)
	}
	if !mat4Finite(inv) {
		return GlobalTransform{}, fmt.Errorf("%w: inverse is not finite", ErrNonInvertible)
	}
	return GlobalTransform{mat: inv}, nil
}

// TransformPoint applies the world transform to a point, translation included.
func (g GlobalTransform) TransformPoint(point mgl64.Vec3) mgl64.Vec3 {
	return g.mat.Mul4x1(point.Vec4(1)).Vec3()
}

// TransformVector applies only the linear part to a direction vector.
func (g GlobalTransform) TransformVector(vector mgl64.Vec3) mgl64.Vec3 {
	return g.mat.Mul4x1(vector.Vec4(0)).Vec3()
}

// IsFinite reports whether every matrix element is a finite number.
func (g GlobalTransform) IsFinite() bool {
	return mat4Finite(g.mat)
}

func mat4Finite(m mgl64.Mat4) bool {
	for _, f := range m {
		if !finite(f) {
			return false
		}
	}
	return true
}
