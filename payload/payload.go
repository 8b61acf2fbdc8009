// Package payload parses the one-shot spawn configuration a host hands the
// viewer. The payload is validated against a JSON Schema before decode so a
// malformed host message is a reported error, never a panic at runtime.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Payload is the complete spawn configuration. It is consumed exactly once at
// construction and never persisted.
type Payload struct {
	Session string      `json:"session"`
	Terrain TerrainSpec `json:"terrain"`
	Avatar  AvatarSpec  `json:"avatar"`
	Clips   []string    `json:"clips,omitempty"`
	Script  string      `json:"script,omitempty"`
}

type TerrainSpec struct {
	// Heights is a row-major size*size grid; when empty the viewer generates
	// terrain from Seed/Amplitude instead.
	Size      int       `json:"size"`
	Spacing   float64   `json:"spacing"`
	Heights   []float64 `json:"heights,omitempty"`
	Seed      int64     `json:"seed,omitempty"`
	Amplitude float64   `json:"amplitude,omitempty"`

	// VegetationDensity is instances per 100 square units.
	VegetationDensity float64 `json:"vegetation_density,omitempty"`
}

type AvatarSpec struct {
	Spawn Vec3    `json:"spawn"`
	Yaw   float64 `json:"yaw"`
}

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Vec() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

var schema = jsonschema.MustCompileString("payload.schema.json", schemaJSON)

// Parse validates raw against the payload schema and decodes it.
func Parse(raw []byte) (*Payload, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("payload: decode: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("payload: validate: %w", err)
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("payload: unmarshal: %w", err)
	}

	if n := len(p.Terrain.Heights); n > 0 && n != p.Terrain.Size*p.Terrain.Size {
		return nil, fmt.Errorf("payload: terrain expects %d heights, got %d",
			p.Terrain.Size*p.Terrain.Size, n)
	}
	return &p, nil
}
