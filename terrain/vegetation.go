package terrain

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Instance is one scattered vegetation placement, already settled onto the
// surface.
type Instance struct {
	Pos   mgl64.Vec3
	Scale float64
}

// Scatter places roughly density instances per 100 square units across the
// field, deterministically for a given seed. Positions that fall outside the
// field (never, with clamped sampling) or on missing ground are skipped.
func Scatter(h *Heightfield, density float64, seed int64) []Instance {
	if h == nil || density <= 0 {
		return nil
	}

	ext := h.Extent()
	area := (2 * ext) * (2 * ext)
	count := int(area / 100 * density)
	if count <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]Instance, 0, count)
	for i := 0; i < count; i++ {
		x := (rng.Float64()*2 - 1) * ext
		z := (rng.Float64()*2 - 1) * ext
		y, ok := h.HeightAt(x, z)
		if !ok {
			continue
		}
		out = append(out, Instance{
			Pos:   mgl64.Vec3{x, y, z},
			Scale: 0.75 + rng.Float64()*0.5,
		})
	}
	return out
}
