package tuning

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/fennwick/groundview/avatar"
)

//go:embed *.yaml
var tuningFS embed.FS

// Spec is the on-disk tuning file for the viewer. Zero values fall back to the
// controller defaults so a partial file stays valid.
type Spec struct {
	WalkSpeed     float64    `yaml:"walk_speed"`
	RunSpeed      float64    `yaml:"run_speed"`
	FlySpeed      float64    `yaml:"fly_speed"`
	BackwardScale float64    `yaml:"backward_scale"`
	StrafeScale   float64    `yaml:"strafe_scale"`
	TurnRate      float64    `yaml:"turn_rate"`
	Gravity       float64    `yaml:"gravity"`
	FlightKick    float64    `yaml:"flight_kick"`
	JumpDuration  float64    `yaml:"jump_duration"`
	DampingRate   float64    `yaml:"damping_rate"`
	StopEpsilon   float64    `yaml:"stop_epsilon"`
	ProbeLength   float64    `yaml:"probe_length"`
	KillPlane     *float64   `yaml:"kill_plane"`
	Spawn         *SpawnSpec `yaml:"spawn"`
}

type SpawnSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Load reads a tuning spec by name, preferring a file on disk next to the
// binary and falling back to the embedded default.
func Load(name string) (*Spec, error) {
	data, err := read(name)
	if err != nil {
		return nil, fmt.Errorf("tuning: load %s: %w", name, err)
	}
	return decode(data, name)
}

// LoadFile reads a spec from an explicit path, with no embedded fallback. The
// hot-reload watcher uses it on the file that actually changed.
func LoadFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tuning: load %s: %w", path, err)
	}
	return decode(data, path)
}

func decode(data []byte, name string) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal %s: %w", name, err)
	}
	return &spec, nil
}

func read(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return tuningFS.ReadFile(clean)
}

// Tuning converts the spec into controller constants, filling unset fields
// from the defaults.
func (s *Spec) Tuning() avatar.Tuning {
	t := avatar.DefaultTuning()
	if s == nil {
		return t
	}
	if s.WalkSpeed > 0 {
		t.WalkSpeed = s.WalkSpeed
	}
	if s.RunSpeed > 0 {
		t.RunSpeed = s.RunSpeed
	}
	if s.FlySpeed > 0 {
		t.FlySpeed = s.FlySpeed
	}
	if s.BackwardScale > 0 {
		t.BackwardScale = s.BackwardScale
	}
	if s.StrafeScale > 0 {
		t.StrafeScale = s.StrafeScale
	}
	if s.TurnRate > 0 {
		t.TurnRate = s.TurnRate
	}
	if s.Gravity > 0 {
		t.Gravity = s.Gravity
	}
	if s.FlightKick > 0 {
		t.FlightKick = s.FlightKick
	}
	if s.JumpDuration > 0 {
		t.JumpDuration = s.JumpDuration
	}
	if s.DampingRate > 0 {
		t.DampingRate = s.DampingRate
	}
	if s.StopEpsilon > 0 {
		t.StopEpsilon = s.StopEpsilon
	}
	if s.ProbeLength > 0 {
		t.ProbeLength = s.ProbeLength
	}
	if s.KillPlane != nil {
		t.KillPlane = *s.KillPlane
	}
	if s.Spawn != nil {
		t.Spawn = mgl64.Vec3{s.Spawn.X, s.Spawn.Y, s.Spawn.Z}
	}
	return t
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "tuning/")
}

func diskPath(clean string) string {
	return filepath.Join("tuning", filepath.FromSlash(clean))
}
