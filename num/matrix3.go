// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

// Matrix3 is a 3x3 matrix stored in column-major order, so that
// element (row r, column c) is at index c*3+r.
type Matrix3 [9]Float

// Identity3 returns a new 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3FromCols returns a new [Matrix3] with the given column vectors.
func Matrix3FromCols(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// Matrix3FromRows returns a new [Matrix3] with the given row vectors,
// which reads in the same layout as conventional matrix notation.
func Matrix3FromRows(r0, r1, r2 Vector3) Matrix3 {
	return Matrix3{
		r0.X, r1.X, r2.X,
		r0.Y, r1.Y, r2.Y,
		r0.Z, r1.Z, r2.Z,
	}
}

// Diagonal3 returns a new diagonal [Matrix3] with the components of
// the given vector on the diagonal.
func Diagonal3(v Vector3) Matrix3 {
	return Matrix3{
		v.X, 0, 0,
		0, v.Y, 0,
		0, 0, v.Z,
	}
}

// Mul returns this matrix multiplied with the other given matrix
// (m * o, applying o first when multiplying vectors).
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for c := 0; c < 3; c++ {
		for w := 0; w < 3; w++ {
			r[c*3+w] = m[w]*o[c*3] + m[3+w]*o[c*3+1] + m[6+w]*o[c*3+2]
		}
	}
	return r
}

// MulVector3 returns the given vector multiplied by this matrix.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return V3(
		m[0]*v.X+m[3]*v.Y+m[6]*v.Z,
		m[1]*v.X+m[4]*v.Y+m[7]*v.Z,
		m[2]*v.X+m[5]*v.Y+m[8]*v.Z,
	)
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of this matrix.
func (m Matrix3) Determinant() Float {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of this matrix. If the matrix is
// singular, it returns the zero matrix.
func (m Matrix3) Inverse() Matrix3 {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}
	}
	id := 1 / det
	return Matrix3{
		(m[4]*m[8] - m[7]*m[5]) * id,
		(m[7]*m[2] - m[1]*m[8]) * id,
		(m[1]*m[5] - m[4]*m[2]) * id,
		(m[6]*m[5] - m[3]*m[8]) * id,
		(m[0]*m[8] - m[6]*m[2]) * id,
		(m[3]*m[2] - m[0]*m[5]) * id,
		(m[3]*m[7] - m[6]*m[4]) * id,
		(m[6]*m[1] - m[0]*m[7]) * id,
		(m[0]*m[4] - m[3]*m[1]) * id,
	}
}
