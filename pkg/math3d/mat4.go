package math3d

import "math"

// Mat4 is a 4x4 matrix indexed m[row][col].
//
// Vectors are rows multiplied on the left, so a point p maps to
//
//	out[c] = p.X*m[0][c] + p.Y*m[1][c] + p.Z*m[2][c] + p.W*m[3][c]
//
// and row 3 holds the translation:
//
//	| Xx Xy Xz 0 |   X,Y,Z = basis vectors (rotation/scale)
//	| Yx Yy Yz 0 |   T = translation
//	| Zx Zy Zz 0 |
//	| Tx Ty Tz 1 |
type Mat4 [4][4]float64

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{v.X, v.Y, v.Z, 1},
	}
}

// Scale creates a scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	}
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform(s float64) Mat4 {
	return Scale(V3(s, s, s))
}

// RotateX creates a rotation matrix in the Y/Z plane (about the X axis).
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ creates a rotation matrix in the X/Y plane (about the Z axis).
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Perspective creates a perspective projection matrix.
// fovDeg is the field of view in degrees, aspect is width/height.
// The resulting W of a projected point equals its input Z.
func Perspective(near, far, fovDeg, aspect float64) Mat4 {
	f := 1.0 / math.Tan(fovDeg*0.5*math.Pi/180)
	depth := far - near

	var m Mat4
	m[0][0] = aspect * f
	m[1][1] = f
	m[2][2] = far / depth
	m[3][2] = (-far * near) / depth
	m[2][3] = 1
	m[3][3] = 0
	return m
}

// Mul returns the composition a then b: applying the result to a
// vector equals applying a first and b second.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for row := range 4 {
		for col := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row][k] * b[k][col]
			}
			m[row][col] = sum
		}
	}
	return m
}

// MulVec4 transforms a homogeneous vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// MulPoint transforms v as a point (W = 1) and keeps the resulting W.
func (m Mat4) MulPoint(v Vec3) Vec4 {
	return m.MulVec4(V4FromV3(v, 1))
}

// MulVec3 transforms v as a point and drops the resulting W.
// Use it for affine transforms only.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return m.MulPoint(v).Vec3()
}
