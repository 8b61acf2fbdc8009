package main

import "testing"

func TestDemoSpawnInsideTerrain(t *testing.T) {
	p := demoPayload()
	field := buildField(p.Terrain)

	spawn := p.Avatar.Spawn
	if _, ok := field.HeightAt(spawn.X, spawn.Z); !ok {
		t.Fatalf("demo spawn (%g, %g) is outside the field (extent %g)",
			spawn.X, spawn.Z, field.Extent())
	}
}

func TestMinimapCellMapping(t *testing.T) {
	const extent = 47.0
	tests := []struct {
		name string
		v    float64
		want int
	}{
		{"negative_edge", -extent, 0},
		{"center", 0, 80}, // (minimapSize-1)/2 = 79.5, rounds away from zero
		{"positive_edge", extent, minimapSize - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minimapCell(tt.v, extent); got != tt.want {
				t.Fatalf("minimapCell(%g, %g) = %d, want %d", tt.v, extent, got, tt.want)
			}
		})
	}
}

func TestMinimapRoundTrip(t *testing.T) {
	const extent = 47.0
	for cell := 0; cell < minimapSize; cell++ {
		v := minimapWorld(cell, extent)
		if v < -extent || v > extent {
			t.Fatalf("cell %d maps to %g, outside [-%g, %g]", cell, v, extent, extent)
		}
		if got := minimapCell(v, extent); got != cell {
			t.Fatalf("round trip for cell %d gave %d", cell, got)
		}
	}
}
