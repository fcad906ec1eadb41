// Package math provides the small vector and matrix set the renderer needs.
package math

import "math"

// Vec3 is a 3D vector. It marshals to YAML as a three element sequence.
type Vec3 struct {
	X, Y, Z float32
}

// Splat returns a vector with all components set to s.
func Splat(s float32) Vec3 {
	return Vec3{s, s, s}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// MarshalYAML encodes the vector as [x, y, z].
func (v Vec3) MarshalYAML() (interface{}, error) {
	return []float32{v.X, v.Y, v.Z}, nil
}

// UnmarshalYAML accepts [x, y, z] or a single scalar applied to all axes.
func (v *Vec3) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s float32
	if err := unmarshal(&s); err == nil {
		*v = Splat(s)
		return nil
	}
	var seq [3]float32
	if err := unmarshal(&seq); err != nil {
		return err
	}
	*v = Vec3{seq[0], seq[1], seq[2]}
	return nil
}
