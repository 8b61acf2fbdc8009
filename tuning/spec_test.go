package tuning

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/fennwick/groundview/avatar"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	spec, err := Load("viewer.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tun := spec.Tuning()
	if tun.WalkSpeed != 3.0 {
		t.Fatalf("walk_speed = %v, want 3.0", tun.WalkSpeed)
	}
	if tun.RunSpeed <= tun.WalkSpeed {
		t.Fatalf("run_speed (%v) should exceed walk_speed (%v)", tun.RunSpeed, tun.WalkSpeed)
	}
	if tun.ProbeLength != 2.0 {
		t.Fatalf("probe_length = %v, want 2.0", tun.ProbeLength)
	}
}

func TestPartialSpecFallsBackToDefaults(t *testing.T) {
	var spec Spec
	if err := yaml.Unmarshal([]byte("walk_speed: 5.5\n"), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := spec.Tuning()
	def := avatar.DefaultTuning()
	if got.WalkSpeed != 5.5 {
		t.Fatalf("walk_speed = %v, want 5.5", got.WalkSpeed)
	}
	if got.Gravity != def.Gravity {
		t.Fatalf("gravity should fall back to default %v, got %v", def.Gravity, got.Gravity)
	}
	if got.Spawn != def.Spawn {
		t.Fatalf("spawn should fall back to default %v, got %v", def.Spawn, got.Spawn)
	}
}

func TestNegativeKillPlaneSurvivesDecode(t *testing.T) {
	src := "kill_plane: -120.0\nspawn:\n  x: 1.0\n  y: 2.0\n  z: 3.0\n"
	var spec Spec
	if err := yaml.Unmarshal([]byte(src), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	tun := spec.Tuning()
	if tun.KillPlane != -120.0 {
		t.Fatalf("kill_plane = %v, want -120", tun.KillPlane)
	}
	if tun.Spawn != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("spawn = %v, want (1,2,3)", tun.Spawn)
	}
}
