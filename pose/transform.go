package pose

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a local affine pose: translation, rotation and non-uniform
// scale, expressed relative to the parent entity (or to world space for
// roots). The rotation must stay a unit quaternion; operations that build a
// new rotation re-normalize it.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// Identity returns the identity pose: zero translation, identity rotation,
// unit scale.
func Identity() Transform {
	return Transform{
		Translation: mgl64.Vec3{0, 0, 0},
		Rotation:    mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

// New creates a pose from its three attributes.
func New(translation mgl64.Vec3, rotation mgl64.Quat, scale mgl64.Vec3) Transform {
	return Transform{
		Translation: translation,
		Rotation:    rotation,
		Scale:       scale,
	}
}

// FromTranslation creates a pose offset by translation, with identity
// rotation and unit scale.
func FromTranslation(translation mgl64.Vec3) Transform {
	t := Identity()
	t.Translation = translation
	return t
}

// FromRotation creates a pose rotated by rotation, at the origin with unit scale.
func FromRotation(rotation mgl64.Quat) Transform {
	t := Identity()
	t.Rotation = rotation
	return t
}

// FromScale creates a pose scaled by scale, at the origin with identity rotation.
func FromScale(scale mgl64.Vec3) Transform {
	t := Identity()
	t.Scale = scale
	return t
}

// FromXYZ creates a pose offset by (x, y, z).
func FromXYZ(x, y, z float64) Transform {
	return FromTranslation(mgl64.Vec3{x, y, z})
}

// FromXY creates a pose offset by (x, y) in the Z=0 plane, for 2D use.
func FromXY(x, y float64) Transform {
	return FromTranslation(mgl64.Vec3{x, y, 0})
}

// FromMat4 decomposes an affine matrix back into translation, rotation and
// scale. Shear cannot be represented and is lost; a negative determinant is
// folded into the X scale component.
func FromMat4(m mgl64.Mat4) Transform {
	translation := m.Col(3).Vec3()

	c0 := m.Col(0).Vec3()
	c1 := m.Col(1).Vec3()
	c2 := m.Col(2).Vec3()

	sx, sy, sz := c0.Len(), c1.Len(), c2.Len()
	if m.Det() < 0 {
		sx = -sx
	}

	rotation := mgl64.QuatIdent()
	if sx != 0 && sy != 0 && sz != 0 {
		basis := mgl64.Mat4FromCols(
			c0.Mul(1/sx).Vec4(0),
			c1.Mul(1/sy).Vec4(0),
			c2.Mul(1/sz).Vec4(0),
			mgl64.Vec4{0, 0, 0, 1},
		)
		rotation = mgl64.Mat4ToQuat(basis).Normalize()
	}

	return Transform{
		Translation: translation,
		Rotation:    rotation,
		Scale:       mgl64.Vec3{sx, sy, sz},
	}
}

// LookingAt builds a pose at eye whose forward axis (-Z) points at target.
// It fails with ErrDegenerateGeometry when eye and target coincide, when the
// viewing direction is parallel to up, or when any intermediate value is not
// finite.
func LookingAt(eye, target, up mgl64.Vec3) (Transform, error) {
	forward := target.Sub(eye)
	if forward.Len() < mgl64.Epsilon {
		return Transform{}, fmt.Errorf("%w: eye and target coincide", ErrDegenerateGeometry)
	}
	forward = forward.Normalize()
	if !vec3Finite(forward) {
		return Transform{}, fmt.Errorf("%w: forward direction is not finite", ErrDegenerateGeometry)
	}

	right := forward.Cross(up)
	if right.Len() < mgl64.Epsilon || !vec3Finite(right) {
		return Transform{}, fmt.Errorf("%w: up is parallel to the viewing direction", ErrDegenerateGeometry)
	}
	right = right.Normalize()

	// Re-orthogonalized up; forward and right are already unit length.
	orthoUp := right.Cross(forward)
	if !vec3Finite(orthoUp) {
		return Transform{}, fmt.Errorf("%w: orthogonal up is not finite", ErrDegenerateGeometry)
	}

	basis := mgl64.Mat4FromCols(
		right.Vec4(0),
		orthoUp.Vec4(0),
		forward.Mul(-1).Vec4(0),
		mgl64.Vec4{0, 0, 0, 1},
	)
	rotation := mgl64.Mat4ToQuat(basis).Normalize()
	if !quatFinite(rotation) {
		return Transform{}, fmt.Errorf("%w: rotation is not finite", ErrDegenerateGeometry)
	}

	return New(eye, rotation, mgl64.Vec3{1, 1, 1}), nil
}

// WithTranslation returns a copy of t with its translation replaced.
func (t Transform) WithTranslation(translation mgl64.Vec3) Transform {
	t.Translation = translation
	return t
}

// WithRotation returns a copy of t with its rotation replaced.
func (t Transform) WithRotation(rotation mgl64.Quat) Transform {
	t.Rotation = rotation
	return t
}

// WithScale returns a copy of t with its scale replaced.
func (t Transform) WithScale(scale mgl64.Vec3) Transform {
	t.Scale = scale
	return t
}

// Mat4 returns the affine matrix T·R·S: scale applied first, then rotation,
// then translation.
func (t Transform) Mat4() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

// TransformPoint applies the full pose to a point, translation included.
func (t Transform) TransformPoint(point mgl64.Vec3) mgl64.Vec3 {
	return t.Mat4().Mul4x1(point.Vec4(1)).Vec3()
}

// TransformVector applies only the linear part (rotation and scale) to a
// direction vector; translation is ignored.
func (t Transform) TransformVector(vector mgl64.Vec3) mgl64.Vec3 {
	return t.Mat4().Mul4x1(vector.Vec4(0)).Vec3()
}

// Mul composes t as parent with other as child, multiplying the matrices and
// decomposing the product back into a pose. With non-uniform scale under
// rotation the decomposition is approximate (shear is lost).
func (t Transform) Mul(other Transform) Transform {
	return FromMat4(t.Mat4().Mul4(other.Mat4()))
}

// Inverse returns the pose undoing t, so that t.Mul(inv) is the identity
// within floating tolerance. It fails with ErrNonInvertible when any scale
// component's magnitude is below epsilon.
func (t Transform) Inverse() (Transform, error) {
	if math.Abs(t.Scale.X()) < mgl64.Epsilon ||
		math.Abs(t.Scale.Y()) < mgl64.Epsilon ||
		math.Abs(t.Scale.Z()) < mgl64.Epsilon {
		return Transform{}, fmt.Errorf("%w: scale contains a zero component", ErrNonInvertible)
	}

	invScale := mgl64.Vec3{1 / t.Scale.X(), 1 / t.Scale.Y(), 1 / t.Scale.Z()}
	invRotation := t.Rotation.Inverse()

	scaled := mgl64.Vec3{
		t.Translation.X() * invScale.X(),
		t.Translation.Y() * invScale.Y(),
		t.Translation.Z() * invScale.Z(),
	}
	invTranslation := invRotation.Rotate(scaled).Mul(-1)

	return Transform{
		Translation: invTranslation,
		Rotation:    invRotation,
		Scale:       invScale,
	}, nil
}

// IsFinite reports whether every component of the pose is a finite number.
func (t Transform) IsFinite() bool {
	return vec3Finite(t.Translation) && quatFinite(t.Rotation) && vec3Finite(t.Scale)
}

// Lerp interpolates between two poses: linear on translation and scale,
// spherical on rotation. The resulting rotation is re-normalized.
func Lerp(from, to Transform, amount float64) Transform {
	return Transform{
		Translation: from.Translation.Add(to.Translation.Sub(from.Translation).Mul(amount)),
		Rotation:    mgl64.QuatSlerp(from.Rotation, to.Rotation, amount).Normalize(),
		Scale:       from.Scale.Add(to.Scale.Sub(from.Scale).Mul(amount)),
	}
}

// Nlerp is the cheaper variant of Lerp using normalized linear interpolation
// for the rotation. Good enough for small angular steps.
func Nlerp(from, to Transform, amount float64) Transform {
	return Transform{
		Translation: from.Translation.Add(to.Translation.Sub(from.Translation).Mul(amount)),
		Rotation:    mgl64.QuatNlerp(from.Rotation, to.Rotation, amount).Normalize(),
		Scale:       from.Scale.Add(to.Scale.Sub(from.Scale).Mul(amount)),
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func vec3Finite(v mgl64.Vec3) bool {
	return finite(v.X()) && finite(v.Y()) && finite(v.Z())
}

func quatFinite(q mgl64.Quat) bool {
	return finite(q.W) && vec3Finite(q.V)
}
