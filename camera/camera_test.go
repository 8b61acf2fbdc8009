package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const dt = 1.0 / 60.0

func TestOrbitEyeGeometry(t *testing.T) {
	o := NewOrbit(10)
	o.Pitch = 0
	o.Yaw = 0
	o.Follow(mgl64.Vec3{0, 1, 0}, dt)

	eye := o.Eye()
	want := mgl64.Vec3{0, 1, -10}
	for i := 0; i < 3; i++ {
		if math.Abs(eye[i]-want[i]) > 1e-9 {
			t.Fatalf("eye[%d] = %f, want %f", i, eye[i], want[i])
		}
	}
}

func TestOrbitDistancePreserved(t *testing.T) {
	o := NewOrbit(8)
	o.Yaw = 1.3
	o.Pitch = 0.7
	o.Follow(mgl64.Vec3{4, 2, -3}, dt)

	d := o.Eye().Sub(o.Target()).Len()
	if math.Abs(d-8) > 1e-9 {
		t.Fatalf("eye distance = %f, want 8", d)
	}
}

func TestOrbitPitchClamped(t *testing.T) {
	o := NewOrbit(8)
	o.Pitch = 3.0
	o.Follow(mgl64.Vec3{}, dt)
	if o.Pitch > 1.2 {
		t.Fatalf("pitch = %f, want clamped to 1.2", o.Pitch)
	}
}

func TestShoulderWarmStartsOnAnchor(t *testing.T) {
	s := NewShoulder()
	s.Follow(mgl64.Vec3{0, 0, 0}, 0, dt)

	eye := s.Eye()
	want := mgl64.Vec3{0, s.Height, -s.Back}
	for i := 0; i < 3; i++ {
		if math.Abs(eye[i]-want[i]) > 1e-9 {
			t.Fatalf("eye[%d] = %f, want %f", i, eye[i], want[i])
		}
	}
}

func TestShoulderConvergesAfterCut(t *testing.T) {
	s := NewShoulder()
	s.Follow(mgl64.Vec3{0, 0, 0}, 0, dt)

	target := mgl64.Vec3{50, 0, 50}
	start := s.Eye().Sub(s.anchor(target, 0)).Len()
	s.Follow(target, 0, dt)
	after := s.Eye().Sub(s.anchor(target, 0)).Len()
	if after >= start {
		t.Fatalf("eye did not move toward anchor: %f -> %f", start, after)
	}

	for i := 0; i < 600; i++ {
		s.Follow(target, 0, dt)
	}
	final := s.Eye().Sub(s.anchor(target, 0)).Len()
	if final > 0.05 {
		t.Fatalf("eye still %f from anchor after settling", final)
	}
}

func TestShoulderFollowsFacing(t *testing.T) {
	s := NewShoulder()
	target := mgl64.Vec3{0, 0, 0}
	yaw := math.Pi / 2 // facing +X, camera settles at -X
	for i := 0; i < 600; i++ {
		s.Follow(target, yaw, dt)
	}
	eye := s.Eye()
	if eye[0] > -s.Back+0.1 {
		t.Fatalf("eye.x = %f, want near %f behind facing", eye[0], -s.Back)
	}
}
