package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint(Vec3{1, 2, 3})

	expected := Vec3{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"X 90", RotateX(float32(math.Pi / 2)), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"Y 90", RotateY(float32(math.Pi / 2)), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if abs(got.X-tt.want.X) > 0.001 || abs(got.Y-tt.want.Y) > 0.001 || abs(got.Z-tt.want.Z) > 0.001 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMulOrder(t *testing.T) {
	// Translate after rotating: the rotation must act on the point first.
	m := Translate(1, 0, 0).Mul(RotateY(float32(math.Pi / 2)))
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{1, 0, -1}
	if abs(got.X-want.X) > 0.001 || abs(got.Y-want.Y) > 0.001 || abs(got.Z-want.Z) > 0.001 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApproxEqual(t *testing.T) {
	a := Identity()
	b := Identity()
	b[5] += 1e-6
	if !a.ApproxEqual(b, 1e-5) {
		t.Error("expected matrices to be approximately equal")
	}
	b[5] += 1
	if a.ApproxEqual(b, 1e-5) {
		t.Error("expected matrices to differ")
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); abs(got-float32(math.Pi)) > 1e-6 {
		t.Errorf("DegToRad(180) = %v, want pi", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
