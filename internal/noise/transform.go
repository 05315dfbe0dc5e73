package noise

import "github.com/go-gl/mathgl/mgl64"

// Transform places the noise domain: positions are scaled and rotated, then
// translated, before any frequency scaling. Rotation is in degrees and
// applied around Z, then X, then Y.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Vec3
	Scale       mgl64.Vec3
}

// IdentityTransform leaves positions untouched.
func IdentityTransform() Transform {
	return Transform{Scale: mgl64.Vec3{1, 1, 1}}
}

func (t Transform) rotation() mgl64.Mat3 {
	return mgl64.Rotate3DY(mgl64.DegToRad(t.Rotation.Y())).
		Mul3(mgl64.Rotate3DX(mgl64.DegToRad(t.Rotation.X()))).
		Mul3(mgl64.Rotate3DZ(mgl64.DegToRad(t.Rotation.Z())))
}

func (t Transform) scale() mgl64.Mat3 {
	return mgl64.Mat3{
		t.Scale.X(), 0, 0,
		0, t.Scale.Y(), 0,
		0, 0, t.Scale.Z(),
	}
}

// Matrix returns the affine domain matrix. The bottom row is always 0,0,0,1.
func (t Transform) Matrix() mgl64.Mat4 {
	m := t.scale().Mul3(t.rotation())
	return mgl64.Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		t.Translation.X(), t.Translation.Y(), t.Translation.Z(), 1,
	}
}

// DerivativeMatrix maps derivatives taken in the transformed domain back to
// the untransformed input: the transpose of the linear part of Matrix.
func (t Transform) DerivativeMatrix() mgl64.Mat3 {
	return t.rotation().Transpose().Mul3(t.scale())
}

// ProjectDerivatives re-expresses the derivatives of s with respect to the
// positions before the transform. Evaluators leave this to the caller.
func (t Transform) ProjectDerivatives(s Sample) Sample {
	g := t.DerivativeMatrix().Mul3x1(s.Gradient())
	return Sample{V: s.V, DX: g.X(), DY: g.Y(), DZ: g.Z()}
}

// TransformPositions applies an affine matrix to every lane.
func TransformPositions(m mgl64.Mat4, positions Position4) Position4 {
	for i, p := range positions {
		positions[i] = m.Mul4x1(p.Vec4(1)).Vec3()
	}
	return positions
}
