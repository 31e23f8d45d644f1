package pose

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-5

func approxFloat(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func approxVec3(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < tolerance
}

// approxQuat compares rotations: q and -q encode the same rotation, so the
// check runs on the absolute dot product.
func approxQuat(a, b mgl64.Quat) bool {
	return math.Abs(math.Abs(a.Dot(b))-1) < tolerance
}

// =============================================================================
// Construction
// =============================================================================

func TestIdentity(t *testing.T) {
	id := Identity()

	if !approxVec3(id.Translation, mgl64.Vec3{0, 0, 0}) {
		t.Errorf("identity translation should be zero, got %v", id.Translation)
	}
	if !approxQuat(id.Rotation, mgl64.QuatIdent()) {
		t.Errorf("identity rotation should be the identity quaternion, got %v", id.Rotation)
	}
	if !approxVec3(id.Scale, mgl64.Vec3{1, 1, 1}) {
		t.Errorf("identity scale should be ones, got %v", id.Scale)
	}
}

func TestFactories(t *testing.T) {
	rotation := mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0})

	tests := []struct {
		name      string
		transform Transform
		want      Transform
	}{
		{
			name:      "FromTranslation keeps other attributes at identity",
			transform: FromTranslation(mgl64.Vec3{1, 2, 3}),
			want:      Identity().WithTranslation(mgl64.Vec3{1, 2, 3}),
		},
		{
			name:      "FromRotation keeps other attributes at identity",
			transform: FromRotation(rotation),
			want:      Identity().WithRotation(rotation),
		},
		{
			name:      "FromScale keeps other attributes at identity",
			transform: FromScale(mgl64.Vec3{2, 3, 4}),
			want:      Identity().WithScale(mgl64.Vec3{2, 3, 4}),
		},
		{
			name:      "FromXYZ is a translation",
			transform: FromXYZ(1, 2, 3),
			want:      FromTranslation(mgl64.Vec3{1, 2, 3}),
		},
		{
			name:      "FromXY stays in the Z=0 plane",
			transform: FromXY(1, 2),
			want:      FromTranslation(mgl64.Vec3{1, 2, 0}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approxVec3(tt.transform.Translation, tt.want.Translation) {
				t.Errorf("translation = %v, want %v", tt.transform.Translation, tt.want.Translation)
			}
			if !approxQuat(tt.transform.Rotation, tt.want.Rotation) {
				t.Errorf("rotation = %v, want %v", tt.transform.Rotation, tt.want.Rotation)
			}
			if !approxVec3(tt.transform.Scale, tt.want.Scale) {
				t.Errorf("scale = %v, want %v", tt.transform.Scale, tt.want.Scale)
			}
		})
	}
}

func TestBuildersArePure(t *testing.T) {
	original := FromXYZ(1, 2, 3)
	_ = original.WithTranslation(mgl64.Vec3{9, 9, 9}).
		WithRotation(mgl64.QuatRotate(1, mgl64.Vec3{1, 0, 0})).
		WithScale(mgl64.Vec3{5, 5, 5})

	if !approxVec3(original.Translation, mgl64.Vec3{1, 2, 3}) {
		t.Errorf("builder mutated the receiver: %v", original.Translation)
	}
	if !approxVec3(original.Scale, mgl64.Vec3{1, 1, 1}) {
		t.Errorf("builder mutated the receiver scale: %v", original.Scale)
	}
}

// =============================================================================
// Look-at
// =============================================================================

func TestLookingAt(t *testing.T) {
	tests := []struct {
		name    string
		eye     mgl64.Vec3
		target  mgl64.Vec3
		up      mgl64.Vec3
		wantErr bool
	}{
		{
			name:   "camera on +Z looking at origin",
			eye:    mgl64.Vec3{0, 0, 5},
			target: mgl64.Vec3{0, 0, 0},
			up:     mgl64.Vec3{0, 1, 0},
		},
		{
			name:   "off-axis view",
			eye:    mgl64.Vec3{3, 2, 1},
			target: mgl64.Vec3{-1, 0, 4},
			up:     mgl64.Vec3{0, 1, 0},
		},
		{
			name:    "eye and target coincide",
			eye:     mgl64.Vec3{1, 1, 1},
			target:  mgl64.Vec3{1, 1, 1},
			up:      mgl64.Vec3{0, 1, 0},
			wantErr: true,
		},
		{
			name:    "up parallel to viewing direction",
			eye:     mgl64.Vec3{0, 0, 0},
			target:  mgl64.Vec3{0, 0, 1},
			up:      mgl64.Vec3{0, 0, 1},
			wantErr: true,
		},
		{
			name:    "up anti-parallel to viewing direction",
			eye:     mgl64.Vec3{0, 0, 0},
			target:  mgl64.Vec3{0, 1, 0},
			up:      mgl64.Vec3{0, 1, 0},
			wantErr: true,
		},
		{
			name:    "non-finite eye",
			eye:     mgl64.Vec3{math.NaN(), 0, 0},
			target:  mgl64.Vec3{0, 0, 0},
			up:      mgl64.Vec3{0, 1, 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transform, err := LookingAt(tt.eye, tt.target, tt.up)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got transform %v", transform)
				}
				if !errors.Is(err, ErrDegenerateGeometry) {
					t.Errorf("error should wrap ErrDegenerateGeometry, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !approxVec3(transform.Translation, tt.eye) {
				t.Errorf("translation = %v, want eye %v", transform.Translation, tt.eye)
			}
			if !approxVec3(transform.Scale, mgl64.Vec3{1, 1, 1}) {
				t.Errorf("scale = %v, want ones", transform.Scale)
			}

			// The local forward axis (-Z) must point from eye to target.
			forward := transform.TransformVector(mgl64.Vec3{0, 0, -1})
			want := tt.target.Sub(tt.eye).Normalize()
			if !approxVec3(forward, want) {
				t.Errorf("forward = %v, want %v", forward, want)
			}
		})
	}
}

// =============================================================================
// Matrix, points and vectors
// =============================================================================

func TestMat4TranslationColumn(t *testing.T) {
	transform := FromXYZ(1, 2, 3)
	m := transform.Mat4()

	if !approxVec3(m.Col(3).Vec3(), mgl64.Vec3{1, 2, 3}) {
		t.Errorf("matrix translation column = %v, want (1,2,3)", m.Col(3).Vec3())
	}
}

func TestMat4CompositionOrder(t *testing.T) {
	// T·R·S applied to the +X unit point: scale by 2 first, rotate 90° about
	// Y (+X goes to -Z), then translate by +Y.
	transform := New(
		mgl64.Vec3{0, 1, 0},
		mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}),
		mgl64.Vec3{2, 2, 2},
	)

	got := transform.TransformPoint(mgl64.Vec3{1, 0, 0})
	if !approxVec3(got, mgl64.Vec3{0, 1, -2}) {
		t.Errorf("point = %v, want (0, 1, -2)", got)
	}
}

func TestTransformPointAndVector(t *testing.T) {
	transform := FromXYZ(1, 2, 3).WithScale(mgl64.Vec3{2, 2, 2})

	point := transform.TransformPoint(mgl64.Vec3{1, 1, 1})
	if !approxVec3(point, mgl64.Vec3{3, 4, 5}) {
		t.Errorf("point = %v, want (3, 4, 5)", point)
	}

	// Vectors ignore translation.
	vector := transform.TransformVector(mgl64.Vec3{1, 1, 1})
	if !approxVec3(vector, mgl64.Vec3{2, 2, 2}) {
		t.Errorf("vector = %v, want (2, 2, 2)", vector)
	}
}

func TestFromMat4Roundtrip(t *testing.T) {
	// Non-uniform scale combined with arbitrary rotation is ambiguous under
	// decomposition, so it is deliberately absent here.
	tests := []struct {
		name      string
		transform Transform
	}{
		{
			name:      "translation only",
			transform: FromXYZ(1, 2, 3),
		},
		{
			name: "rotation with uniform scale",
			transform: FromXYZ(1, 2, 3).
				WithRotation(mgl64.QuatRotate(0.5, mgl64.Vec3{0, 1, 0})).
				WithScale(mgl64.Vec3{2, 2, 2}),
		},
		{
			name:      "non-uniform scale without rotation",
			transform: FromScale(mgl64.Vec3{2, 1.5, 0.5}).WithTranslation(mgl64.Vec3{-1, 4, 0}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromMat4(tt.transform.Mat4())

			if !approxVec3(got.Translation, tt.transform.Translation) {
				t.Errorf("translation = %v, want %v", got.Translation, tt.transform.Translation)
			}
			if !approxQuat(got.Rotation, tt.transform.Rotation) {
				t.Errorf("rotation = %v, want %v", got.Rotation, tt.transform.Rotation)
			}
			if !approxVec3(got.Scale, tt.transform.Scale) {
				t.Errorf("scale = %v, want %v", got.Scale, tt.transform.Scale)
			}
		})
	}
}

// =============================================================================
// Composition
// =============================================================================

func TestMulTranslations(t *testing.T) {
	parent := FromXYZ(1, 0, 0)
	child := FromXYZ(0, 1, 0)

	combined := parent.Mul(child)
	if !approxVec3(combined.Translation, mgl64.Vec3{1, 1, 0}) {
		t.Errorf("translation = %v, want (1, 1, 0)", combined.Translation)
	}
}

func TestMulParentRotatesChildOffset(t *testing.T) {
	parent := FromRotation(mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}))
	child := FromXYZ(1, 0, 0)

	// The child's +X offset rotates into +Y.
	combined := parent.Mul(child)
	if !approxVec3(combined.Translation, mgl64.Vec3{0, 1, 0}) {
		t.Errorf("translation = %v, want (0, 1, 0)", combined.Translation)
	}
}

func TestMulAssociativity(t *testing.T) {
	a := FromXYZ(1, 2, 3).WithRotation(mgl64.QuatRotate(0.3, mgl64.Vec3{0, 1, 0}))
	b := FromXYZ(-2, 0, 1).WithRotation(mgl64.QuatRotate(0.7, mgl64.Vec3{1, 0, 0}))
	c := FromXYZ(0, 5, -1).WithScale(mgl64.Vec3{2, 2, 2})

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))

	if !approxVec3(left.Translation, right.Translation) {
		t.Errorf("translations diverge: %v vs %v", left.Translation, right.Translation)
	}
	if !approxQuat(left.Rotation, right.Rotation) {
		t.Errorf("rotations diverge: %v vs %v", left.Rotation, right.Rotation)
	}
	if !approxVec3(left.Scale, right.Scale) {
		t.Errorf("scales diverge: %v vs %v", left.Scale, right.Scale)
	}
}

// =============================================================================
// Inverse
// =============================================================================

func TestInverseRoundtrip(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform
	}{
		{
			name:      "translation only",
			transform: FromXYZ(1, 2, 3),
		},
		{
			name: "translation, rotation and uniform scale",
			transform: FromXYZ(1, 2, 3).
				WithRotation(mgl64.QuatRotate(0.5, mgl64.Vec3{0, 1, 0})).
				WithScale(mgl64.Vec3{2, 2, 2}),
		},
		{
			name:      "non-uniform scale without rotation",
			transform: FromScale(mgl64.Vec3{2, 4, 0.5}).WithTranslation(mgl64.Vec3{3, -1, 2}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inverse, err := tt.transform.Inverse()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			identity := tt.transform.Mul(inverse)
			if !approxVec3(identity.Translation, mgl64.Vec3{0, 0, 0}) {
				t.Errorf("translation = %v, want zero", identity.Translation)
			}
			if !approxQuat(identity.Rotation, mgl64.QuatIdent()) {
				t.Errorf("rotation = %v, want identity", identity.Rotation)
			}
			if !approxVec3(identity.Scale, mgl64.Vec3{1, 1, 1}) {
				t.Errorf("scale = %v, want ones", identity.Scale)
			}
		})
	}
}

func TestInverseZeroScale(t *testing.T) {
	tests := []struct {
		name  string
		scale mgl64.Vec3
	}{
		{name: "zero X", scale: mgl64.Vec3{0, 1, 1}},
		{name: "zero Y", scale: mgl64.Vec3{1, 0, 1}},
		{name: "zero Z", scale: mgl64.Vec3{1, 1, 0}},
		{name: "all zero", scale: mgl64.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromScale(tt.scale).Inverse()
			if err == nil {
				t.Fatal("expected error for zero scale component")
			}
			if !errors.Is(err, ErrNonInvertible) {
				t.Errorf("error should wrap ErrNonInvertible, got %v", err)
			}
		})
	}
}

// =============================================================================
// Finite checks and interpolation
// =============================================================================

func TestIsFinite(t *testing.T) {
	if !FromXYZ(1, 2, 3).IsFinite() {
		t.Error("finite transform reported as non-finite")
	}
	if FromXYZ(math.NaN(), 2, 3).IsFinite() {
		t.Error("NaN translation reported as finite")
	}
	if FromScale(mgl64.Vec3{1, math.Inf(1), 1}).IsFinite() {
		t.Error("Inf scale reported as finite")
	}
	if Identity().WithRotation(mgl64.Quat{W: math.NaN()}).IsFinite() {
		t.Error("NaN rotation reported as finite")
	}
}

func TestLerp(t *testing.T) {
	from := FromXYZ(0, 0, 0)
	to := FromXYZ(10, 20, 30).
		WithRotation(mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0})).
		WithScale(mgl64.Vec3{3, 3, 3})

	mid := Lerp(from, to, 0.5)

	if !approxVec3(mid.Translation, mgl64.Vec3{5, 10, 15}) {
		t.Errorf("translation = %v, want (5, 10, 15)", mid.Translation)
	}
	if !approxVec3(mid.Scale, mgl64.Vec3{2, 2, 2}) {
		t.Errorf("scale = %v, want (2, 2, 2)", mid.Scale)
	}
	if !approxFloat(mid.Rotation.Len(), 1) {
		t.Errorf("rotation should stay normalized, |q| = %v", mid.Rotation.Len())
	}
	// Halfway through a half-turn about Y is a quarter turn.
	want := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	if !approxQuat(mid.Rotation, want) {
		t.Errorf("rotation = %v, want quarter turn about Y", mid.Rotation)
	}
}

func TestLerpEndpoints(t *testing.T) {
	from := FromXYZ(1, 1, 1)
	to := FromXYZ(5, 5, 5).WithScale(mgl64.Vec3{2, 2, 2})

	for _, interp := range []func(Transform, Transform, float64) Transform{Lerp, Nlerp} {
		start := interp(from, to, 0)
		end := interp(from, to, 1)

		if !approxVec3(start.Translation, from.Translation) {
			t.Errorf("t=0 translation = %v, want %v", start.Translation, from.Translation)
		}
		if !approxVec3(end.Translation, to.Translation) {
			t.Errorf("t=1 translation = %v, want %v", end.Translation, to.Translation)
		}
		if !approxVec3(end.Scale, to.Scale) {
			t.Errorf("t=1 scale = %v, want %v", end.Scale, to.Scale)
		}
	}
}
