package avatar

import "github.com/go-gl/mathgl/mgl64"

// Tuning holds the movement constants for the locomotion controller. Values
// are world units and seconds.
type Tuning struct {
	WalkSpeed float64
	RunSpeed  float64
	FlySpeed  float64

	// BackwardScale slows backpedaling; StrafeScale slows sidestepping.
	BackwardScale float64
	StrafeScale   float64

	// TurnRate is the yaw rate in radians per second while a turn key is held
	// together with forward or backward.
	TurnRate float64

	Gravity float64

	// FlightKick is the instantaneous upward velocity applied on flight entry.
	FlightKick float64

	// JumpDuration is how long the jump clip owns the vertical axis.
	JumpDuration float64

	// DampingRate is the exponential decay rate applied to velocity when no
	// input drives an axis; StopEpsilon snaps the remainder to exactly zero.
	DampingRate float64
	StopEpsilon float64

	// ProbeLength is the fixed downward ray length of the ground probe.
	ProbeLength float64

	// KillPlane is the height below which a probe miss triggers the safety
	// respawn back to Spawn.
	KillPlane float64
	Spawn     mgl64.Vec3
}

func DefaultTuning() Tuning {
	return Tuning{
		WalkSpeed:     3.0,
		RunSpeed:      7.5,
		FlySpeed:      9.0,
		BackwardScale: 0.5,
		StrafeScale:   0.75,
		TurnRate:      2.0,
		Gravity:       19.6,
		FlightKick:    6.0,
		JumpDuration:  0.85,
		DampingRate:   8.0,
		StopEpsilon:   0.01,
		ProbeLength:   2.0,
		KillPlane:     -50.0,
		Spawn:         mgl64.Vec3{0, 1, 0},
	}
}
