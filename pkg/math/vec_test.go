package math

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if zero := (Vec3{}).Normalize(); zero != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero", zero)
	}
}

func TestVec3YAML(t *testing.T) {
	var out struct {
		A Vec3 `yaml:"a"`
		B Vec3 `yaml:"b"`
	}
	if err := yaml.Unmarshal([]byte("a: [1, 2.5, -3]\nb: 0.2\n"), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.A != (Vec3{1, 2.5, -3}) {
		t.Errorf("a = %v", out.A)
	}
	if out.B != Splat(0.2) {
		t.Errorf("b = %v", out.B)
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back struct {
		A Vec3 `yaml:"a"`
		B Vec3 `yaml:"b"`
	}
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	if back != out {
		t.Errorf("round trip = %+v, want %+v", back, out)
	}
}
