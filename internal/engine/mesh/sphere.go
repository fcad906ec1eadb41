package mesh

import (
	gomath "math"

	"github.com/Faultbox/wobble/pkg/math"
)

// Default sphere tessellation.
const (
	DefaultSectors = 36
	DefaultStacks  = 18
)

// Sphere builds a UV sphere of the given radius around center. sectors are
// longitude segments and stacks latitude segments; values below 3 and 2 are
// raised to those minimums. Each ring repeats its first vertex so the seam
// gets u = 1.
func Sphere(radius float32, center math.Vec3, sectors, stacks int) *Mesh {
	if sectors < 3 {
		sectors = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	m := &Mesh{
		Vertices: make([]float32, 0, (sectors+1)*(stacks+1)*FloatsPerVertex),
		Indices:  make([]uint32, 0, sectors*(stacks-1)*6),
	}

	for i := 0; i <= stacks; i++ {
		v := float64(i) / float64(stacks)
		theta := v * gomath.Pi // 0 at the north pole
		sinT, cosT := gomath.Sincos(theta)

		for j := 0; j <= sectors; j++ {
			u := float64(j) / float64(sectors)
			phi := u * 2 * gomath.Pi
			sinP, cosP := gomath.Sincos(phi)

			n := math.Vec3{
				X: float32(-cosP * sinT),
				Y: float32(cosT),
				Z: float32(sinP * sinT),
			}
			p := center.Add(n.Scale(radius))

			m.Vertices = append(m.Vertices,
				p.X, p.Y, p.Z,
				n.X, n.Y, n.Z,
				float32(u), float32(1-v),
			)
		}
	}

	ring := uint32(sectors + 1)
	for i := 0; i < stacks; i++ {
		k1 := uint32(i) * ring
		k2 := k1 + ring
		for j := 0; j < sectors; j++ {
			// The pole rows collapse to points; skip their degenerate halves.
			if i != 0 {
				m.Indices = append(m.Indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				m.Indices = append(m.Indices, k1+1, k2, k2+1)
			}
			k1++
			k2++
		}
	}

	return m
}
