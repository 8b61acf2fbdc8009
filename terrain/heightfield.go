package terrain

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Heightfield is a regular grid of surface heights spanning a square region
// centered on the world origin. Height between grid points is bilinear.
type Heightfield struct {
	size    int
	spacing float64
	heights []float64
}

// New builds a heightfield from row-major heights. size is grid points per
// side, spacing the world distance between neighboring points.
func New(size int, spacing float64, heights []float64) (*Heightfield, error) {
	if size < 2 {
		return nil, fmt.Errorf("terrain: grid size %d too small", size)
	}
	if spacing <= 0 {
		return nil, fmt.Errorf("terrain: spacing must be positive, got %v", spacing)
	}
	if len(heights) != size*size {
		return nil, fmt.Errorf("terrain: expected %d heights, got %d", size*size, len(heights))
	}
	return &Heightfield{size: size, spacing: spacing, heights: heights}, nil
}

// Generate produces deterministic rolling hills from a seed. One smoothing
// pass keeps slopes walkable.
func Generate(size int, spacing, amplitude float64, seed int64) *Heightfield {
	if size < 2 {
		size = 2
	}
	rng := rand.New(rand.NewSource(seed))
	raw := make([]float64, size*size)
	for i := range raw {
		raw[i] = (rng.Float64()*2 - 1) * amplitude
	}

	smoothed := make([]float64, size*size)
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			sum, n := 0.0, 0
			for dz := -1; dz <= 1; dz++ {
				for dx := -1; dx <= 1; dx++ {
					nx, nz := x+dx, z+dz
					if nx < 0 || nx >= size || nz < 0 || nz >= size {
						continue
					}
					sum += raw[nz*size+nx]
					n++
				}
			}
			smoothed[z*size+x] = sum / float64(n)
		}
	}

	return &Heightfield{size: size, spacing: spacing, heights: smoothed}
}

// Extent returns half the side length: the field covers [-Extent, Extent] on
// both horizontal axes.
func (h *Heightfield) Extent() float64 {
	return float64(h.size-1) * h.spacing / 2
}

// HeightAt samples the surface height at world (x, z) with bilinear
// interpolation. The second return is false outside the field.
func (h *Heightfield) HeightAt(x, z float64) (float64, bool) {
	ext := h.Extent()
	if x < -ext || x > ext || z < -ext || z > ext {
		return 0, false
	}

	gx := (x + ext) / h.spacing
	gz := (z + ext) / h.spacing
	x0 := int(math.Floor(gx))
	z0 := int(math.Floor(gz))
	if x0 >= h.size-1 {
		x0 = h.size - 2
	}
	if z0 >= h.size-1 {
		z0 = h.size - 2
	}
	tx := gx - float64(x0)
	tz := gz - float64(z0)

	h00 := h.heights[z0*h.size+x0]
	h10 := h.heights[z0*h.size+x0+1]
	h01 := h.heights[(z0+1)*h.size+x0]
	h11 := h.heights[(z0+1)*h.size+x0+1]

	top := h00 + (h10-h00)*tx
	bottom := h01 + (h11-h01)*tx
	return top + (bottom-top)*tz, true
}

// Probe is the downward ground ray: it reports the surface point directly
// under origin when the surface is at or below the origin and within length
// units of it. Outside the field there is no ground at all.
func (h *Heightfield) Probe(origin mgl64.Vec3, length float64) (mgl64.Vec3, bool) {
	ground, ok := h.HeightAt(origin.X(), origin.Z())
	if !ok {
		return mgl64.Vec3{}, false
	}
	if ground > origin.Y() || origin.Y()-ground > length {
		return mgl64.Vec3{}, false
	}
	return mgl64.Vec3{origin.X(), ground, origin.Z()}, true
}
