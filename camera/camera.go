// Package camera provides the two follow rigs that consume the avatar
// transform: a free orbit and an over-the-shoulder elastic band. Both are pure
// math; the render layer reads Eye/Target each frame.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/fennwick/groundview/common"
)

// Orbit circles a target at a fixed distance, with free yaw and pitch.
type Orbit struct {
	Yaw      float64
	Pitch    float64
	Distance float64

	target mgl64.Vec3
}

func NewOrbit(distance float64) *Orbit {
	if distance <= 0 {
		distance = 8
	}
	return &Orbit{Distance: distance, Pitch: 0.4}
}

// Follow recenters the orbit on the target. The rig tracks instantly; only
// the shoulder rig is elastic.
func (o *Orbit) Follow(target mgl64.Vec3, dt float64) {
	o.target = target
	o.Pitch = common.Clamp(o.Pitch, -1.2, 1.2)
}

func (o *Orbit) Target() mgl64.Vec3 { return o.target }

func (o *Orbit) Eye() mgl64.Vec3 {
	cp := math.Cos(o.Pitch)
	dir := mgl64.Vec3{
		math.Sin(o.Yaw) * cp,
		math.Sin(o.Pitch),
		math.Cos(o.Yaw) * cp,
	}
	return o.target.Sub(dir.Mul(o.Distance))
}

// Shoulder trails behind the avatar's facing with exponential damping, the
// elastic-band feel: quick cuts settle smoothly instead of snapping.
type Shoulder struct {
	Back      float64
	Height    float64
	Stiffness float64

	pos    mgl64.Vec3
	target mgl64.Vec3
	warmed bool
}

func NewShoulder() *Shoulder {
	return &Shoulder{Back: 4, Height: 2, Stiffness: 6}
}

// Follow moves the eye toward the anchor point behind the target's facing.
func (s *Shoulder) Follow(target mgl64.Vec3, yaw, dt float64) {
	s.target = target
	anchor := s.anchor(target, yaw)
	if !s.warmed {
		s.pos = anchor
		s.warmed = true
		return
	}
	for i := 0; i < 3; i++ {
		s.pos[i] = common.DampTo(s.pos[i], anchor[i], s.Stiffness, 1e-4, dt)
	}
}

func (s *Shoulder) anchor(target mgl64.Vec3, yaw float64) mgl64.Vec3 {
	back := mgl64.Vec3{-math.Sin(yaw), 0, -math.Cos(yaw)}
	return target.Add(back.Mul(s.Back)).Add(mgl64.Vec3{0, s.Height, 0})
}

func (s *Shoulder) Target() mgl64.Vec3 { return s.target }
func (s *Shoulder) Eye() mgl64.Vec3    { return s.pos }
