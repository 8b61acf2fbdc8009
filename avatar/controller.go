package avatar

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/fennwick/groundview/common"
)

// probeLift raises the ground ray origin slightly above the avatar position so
// the ray still finds the surface after small downward penetration.
const probeLift = 0.5

// Controller converts key edges plus elapsed frame time into a continuously
// updated position, facing, and velocity, with ground contact and optional
// flight. It owns its state exclusively; everything is read through accessors.
//
// Update never raises an error: a probe miss below the kill plane resolves to
// the safety respawn, and an oversized dt (tab suspend) simply integrates one
// large step, which the same respawn covers if the avatar tunnels through the
// world.
type Controller struct {
	tuning Tuning
	probe  GroundProbe
	log    zerolog.Logger

	position mgl64.Vec3
	velocity mgl64.Vec3
	yaw      float64

	grounded    bool
	flying      bool
	playingJump bool
	jumpTimer   float64

	forward, backward bool
	left, right       bool
	jumpHeld          bool
	shiftHeld         bool
	jumpRequested     bool
}

func NewController(spawn mgl64.Vec3, yaw float64, probe GroundProbe, tuning Tuning, log zerolog.Logger) *Controller {
	return &Controller{
		tuning:   tuning,
		probe:    probe,
		log:      log,
		position: spawn,
		yaw:      yaw,
	}
}

// SetTuning swaps the movement constants in place (live tuning reload).
func (c *Controller) SetTuning(t Tuning) { c.tuning = t }

func (c *Controller) Position() mgl64.Vec3 { return c.position }
func (c *Controller) Velocity() mgl64.Vec3 { return c.velocity }
func (c *Controller) Yaw() float64         { return c.yaw }
func (c *Controller) Grounded() bool       { return c.grounded }
func (c *Controller) Flying() bool         { return c.flying }

func (c *Controller) HandleKeyDown(key Key) {
	switch key {
	case KeyForward:
		c.forward = true
	case KeyBackward:
		c.backward = true
	case KeyLeft:
		c.left = true
	case KeyRight:
		c.right = true
	case KeyShift:
		c.shiftHeld = true
	case KeyJump:
		c.jumpHeld = true
		// a jump only latches from the ground; while flying the same key is
		// the ascend control
		if c.grounded && !c.flying {
			c.jumpRequested = true
		}
	case KeyFly:
		c.toggleFlight()
	}
}

func (c *Controller) HandleKeyUp(key Key) {
	switch key {
	case KeyForward:
		c.forward = false
	case KeyBackward:
		c.backward = false
	case KeyLeft:
		c.left = false
	case KeyRight:
		c.right = false
	case KeyShift:
		c.shiftHeld = false
	case KeyJump:
		c.jumpHeld = false
	}
}

func (c *Controller) toggleFlight() {
	if c.flying {
		// exit defers to gravity on the next update
		c.flying = false
		c.log.Debug().Msg("flight off")
		return
	}
	c.flying = true
	c.grounded = false
	// a jump in progress surrenders the vertical axis to flight
	c.playingJump = false
	c.jumpRequested = false
	c.velocity[1] = c.tuning.FlightKick
	c.log.Debug().Msg("flight on")
}

// Update is the single per-frame entry point. dt is elapsed seconds since the
// previous frame; it is not clamped.
func (c *Controller) Update(dt float64) {
	t := c.tuning

	// Turning only happens while forward or backward is held; holding
	// forward/back consumes left/right for turning instead of strafing.
	if c.forward || c.backward {
		if c.left {
			c.yaw -= t.TurnRate * dt
		}
		if c.right {
			c.yaw += t.TurnRate * dt
		}
	}

	sin, cos := math.Sin(c.yaw), math.Cos(c.yaw)
	fwd := mgl64.Vec3{sin, 0, cos}
	rightDir := mgl64.Vec3{cos, 0, -sin}

	speed := t.WalkSpeed
	if c.flying {
		speed = t.FlySpeed
	} else if c.shiftHeld {
		speed = t.RunSpeed
	}

	var move mgl64.Vec3
	moving := false
	if c.forward {
		move = move.Add(fwd.Mul(speed))
		moving = true
	}
	if c.backward {
		move = move.Sub(fwd.Mul(speed * t.BackwardScale))
		moving = true
	}
	if !c.forward && !c.backward {
		if c.left {
			move = move.Sub(rightDir.Mul(speed * t.StrafeScale))
			moving = true
		}
		if c.right {
			move = move.Add(rightDir.Mul(speed * t.StrafeScale))
			moving = true
		}
	}

	// Horizontal velocity is set directly while input is held (no ramp-up)
	// and decays exponentially toward exact zero otherwise.
	if moving {
		c.velocity[0] = move.X()
		c.velocity[2] = move.Z()
	} else {
		c.velocity[0] = common.Damp(c.velocity[0], t.DampingRate, t.StopEpsilon, dt)
		c.velocity[2] = common.Damp(c.velocity[2], t.DampingRate, t.StopEpsilon, dt)
	}

	if c.flying {
		switch {
		case c.jumpHeld:
			c.velocity[1] = t.FlySpeed
		case c.shiftHeld:
			c.velocity[1] = -t.FlySpeed
		default:
			c.velocity[1] = common.Damp(c.velocity[1], t.DampingRate, t.StopEpsilon, dt)
		}
	}

	// A latched jump starts the animation-driven window: the clip's root
	// motion owns the vertical axis, so gravity and vertical integration are
	// suppressed until the timer expires.
	if c.jumpRequested {
		c.jumpRequested = false
		if c.grounded && !c.flying && !c.playingJump {
			c.playingJump = true
			c.jumpTimer = 0
			c.grounded = false
			c.velocity[1] = 0
			c.log.Debug().Msg("jump")
		}
	}
	if c.playingJump {
		c.jumpTimer += dt
		if c.jumpTimer >= t.JumpDuration {
			c.playingJump = false
		}
	}

	if !c.grounded && !c.flying && !c.playingJump {
		c.velocity[1] -= t.Gravity * dt
	}

	c.position[0] += c.velocity[0] * dt
	c.position[2] += c.velocity[2] * dt
	if !c.playingJump || c.flying {
		c.position[1] += c.velocity[1] * dt
	}

	c.resolveGround()
}

func (c *Controller) resolveGround() {
	t := c.tuning
	origin := c.position.Add(mgl64.Vec3{0, probeLift, 0})

	grounded := false
	if hit, ok := c.probe.Probe(origin, t.ProbeLength); ok {
		if c.flying && c.velocity.Y() <= 0 && hit.Y() >= c.position.Y() {
			// descending flight touched down
			c.flying = false
			c.log.Debug().Msg("flight landed")
		}
		if !c.flying && !c.playingJump {
			c.position[1] = hit.Y()
			c.velocity[1] = 0
			grounded = true
		}
		// ascending flight passes through the snap plane; the jump window
		// keeps the avatar airborne until its timer expires
	} else if c.position.Y() < t.KillPlane {
		// recovery policy, not an error
		c.log.Info().
			Float64("y", c.position.Y()).
			Msg("below kill plane, respawning")
		c.position = t.Spawn
		c.velocity = mgl64.Vec3{}
		c.flying = false
		c.playingJump = false
	}
	c.grounded = grounded
}

// MovementState derives the frame's movement classification. Pure read.
func (c *Controller) MovementState() MovementState {
	switch {
	case c.flying:
		return MoveFlying
	case c.playingJump:
		return MoveJumping
	case !c.grounded:
		return MoveFalling
	}
	if math.Hypot(c.velocity.X(), c.velocity.Z()) <= c.tuning.StopEpsilon {
		return MoveIdle
	}
	if c.shiftHeld {
		return MoveRunning
	}
	return MoveWalking
}
