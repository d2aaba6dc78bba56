package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// RotationMatrix is a 3x3 rotation matrix stored in row-major order.
type RotationMatrix struct {
	mat [9]float64
}

// NewZeroRotation returns the identity rotation.
func NewZeroRotation() *RotationMatrix {
	return &RotationMatrix{mat: [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// NewRotationMatrix creates a rotation matrix from the row-major components. An error
// is not possible; malformed input simply yields a malformed rotation, so callers are
// expected to pass orthonormal rows.
func NewRotationMatrix(mat [9]float64) *RotationMatrix {
	return &RotationMatrix{mat: mat}
}

// NewRotationFromYaw returns the rotation about the +Z axis by the given angle in
// radians, counterclockwise when viewed from above.
func NewRotationFromYaw(yaw float64) *RotationMatrix {
	c, s := math.Cos(yaw), math.Sin(yaw)
	return &RotationMatrix{mat: [9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}

// NewRotationFromEulerZYX composes rotations about Z (yaw), then Y (pitch), then X
// (roll), all in radians.
func NewRotationFromEulerZYX(yaw, pitch, roll float64) *RotationMatrix {
	cz, sz := math.Cos(yaw), math.Sin(yaw)
	cy, sy := math.Cos(pitch), math.Sin(pitch)
	cx, sx := math.Cos(roll), math.Sin(roll)
	return &RotationMatrix{mat: [9]float64{
		cz * cy, cz*sy*sx - sz*cx, cz*sy*cx + sz*sx,
		sz * cy, sz*sy*sx + cz*cx, sz*sy*cx - cz*sx,
		-sy, cy * sx, cy * cx,
	}}
}

// Row returns the a requested row from the rotation matrix.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[row*3], Y: rm.mat[row*3+1], Z: rm.mat[row*3+2]}
}

// At returns the float corresponding to the element at the given (row, col) position.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[row*3+col]
}

// Apply rotates the given vector.
func (rm *RotationMatrix) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.mat[0]*v.X + rm.mat[1]*v.Y + rm.mat[2]*v.Z,
		Y: rm.mat[3]*v.X + rm.mat[4]*v.Y + rm.mat[5]*v.Z,
		Z: rm.mat[6]*v.X + rm.mat[7]*v.Y + rm.mat[8]*v.Z,
	}
}

// Transpose returns the transpose, which for a rotation matrix is also its inverse.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	return &RotationMatrix{mat: [9]float64{
		rm.mat[0], rm.mat[3], rm.mat[6],
		rm.mat[1], rm.mat[4], rm.mat[7],
		rm.mat[2], rm.mat[5], rm.mat[8],
	}}
}

// Compose returns the matrix product rm * other.
func (rm *RotationMatrix) Compose(other *RotationMatrix) *RotationMatrix {
	var out [9]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sum := 0.
			for k := 0; k < 3; k++ {
				sum += rm.At(row, k) * other.At(k, col)
			}
			out[row*3+col] = sum
		}
	}
	return &RotationMatrix{mat: out}
}
