package avatar

import "github.com/rs/zerolog"

// AnimState is the single active animation state. Exactly one is active at any
// time and a transition is atomic within one Update call.
type AnimState string

const (
	AnimIdle AnimState = "idle"
	AnimWalk AnimState = "walk"
	AnimRun  AnimState = "run"
	AnimJump AnimState = "jump"
	AnimFall AnimState = "fall"
	AnimLand AnimState = "land"
	AnimFly  AnimState = "fly"
)

// runSpeedRatio is applied when the walk clip doubles as the run clip, so a
// dedicated run clip is not required.
const runSpeedRatio = 1.6

type boundClip struct {
	clip  Clip
	loop  bool
	speed float64
}

// Animator maps the per-frame movement classification onto a discrete
// animation state using a fixed transition table, issuing at most one playback
// command per transition. A crossfade here is stop-then-start with full weight
// on the incoming clip, not a time-weighted blend; a visible pop on transition
// is a known simplification.
//
// Without bound clips the animator still tracks logical state, which is what
// the HUD and host telemetry consume.
type Animator struct {
	log   zerolog.Logger
	state AnimState
	clips map[AnimState]boundClip
}

func NewAnimator(log zerolog.Logger) *Animator {
	return &Animator{log: log, state: AnimIdle}
}

// State is a pure read of the active animation state.
func (a *Animator) State() AnimState { return a.state }

// BindClips associates animation states with clips from the loaded asset set,
// keyed by state name. Missing entries are tolerated: the state still exists,
// it just emits no playback command. Looping states: idle, walk, run, fall,
// fly; jump and land play once.
func (a *Animator) BindClips(clips map[string]Clip) {
	a.clips = make(map[AnimState]boundClip, 7)

	bind := func(st AnimState, name string, loop bool, speed float64) {
		c, ok := clips[name]
		if !ok || c == nil {
			a.log.Warn().Str("clip", name).Msg("animation clip missing, state stays silent")
			return
		}
		a.clips[st] = boundClip{clip: c, loop: loop, speed: speed}
	}

	bind(AnimIdle, "idle", true, 1)
	bind(AnimWalk, "walk", true, 1)
	if _, ok := clips["run"]; ok {
		bind(AnimRun, "run", true, 1)
	} else {
		// reuse the walk clip, just faster
		bind(AnimRun, "walk", true, runSpeedRatio)
	}
	bind(AnimJump, "jump", false, 1)
	bind(AnimFall, "fall", true, 1)
	bind(AnimLand, "land", false, 1)
	bind(AnimFly, "fly", true, 1)

	a.startClip("", a.state)
}

// Update advances the state machine by exactly one discrete step. dt is
// accepted for forward compatibility with timed transitions; the current table
// is level-triggered only.
func (a *Animator) Update(m MovementState, dt float64) {
	_ = dt
	next := nextAnimState(a.state, m)
	if next == a.state {
		return
	}
	prev := a.state
	a.state = next
	a.startClip(prev, next)
}

func (a *Animator) startClip(prev, next AnimState) {
	nb, ok := a.clips[next]
	if !ok {
		return
	}
	// stop-then-start; skip the stop when walk and run share one clip
	if pb, ok := a.clips[prev]; ok && pb.clip != nb.clip {
		pb.clip.Stop()
	}
	nb.clip.Start(nb.loop, nb.speed)
	nb.clip.SetWeight(1)
}

// nextAnimState is the fixed transition table. Unmatched classifications leave
// the state unchanged.
//
// Policy, deliberately:
//   - jump is self-contained: a falling classification never leaves jump; the
//     clip's own downward arc covers descent, and grounded classifications
//     exit straight to the matching grounded state.
//   - fall is the ledge-drop path, reached without passing through jump, and
//     also exits straight to the grounded state.
//   - land is reserved for flight touchdown: fly exits to land on a grounded
//     classification, and land then resolves to idle/walk/run.
//   - flying preempts every grounded and falling state.
func nextAnimState(cur AnimState, m MovementState) AnimState {
	switch cur {
	case AnimIdle, AnimWalk, AnimRun:
		switch m {
		case MoveIdle:
			return AnimIdle
		case MoveWalking:
			return AnimWalk
		case MoveRunning:
			return AnimRun
		case MoveJumping:
			return AnimJump
		case MoveFalling:
			return AnimFall
		case MoveFlying:
			return AnimFly
		}
	case AnimJump:
		switch m {
		case MoveIdle:
			return AnimIdle
		case MoveWalking:
			return AnimWalk
		case MoveRunning:
			return AnimRun
		case MoveFlying:
			return AnimFly
		}
	case AnimFall:
		switch m {
		case MoveIdle:
			return AnimIdle
		case MoveWalking:
			return AnimWalk
		case MoveRunning:
			return AnimRun
		case MoveJumping:
			return AnimJump
		case MoveFlying:
			return AnimFly
		}
	case AnimLand:
		switch m {
		case MoveIdle:
			return AnimIdle
		case MoveWalking:
			return AnimWalk
		case MoveRunning:
			return AnimRun
		}
	case AnimFly:
		switch m {
		case MoveIdle, MoveWalking, MoveRunning:
			return AnimLand
		case MoveFlying:
			return AnimFly
		}
	}
	return cur
}
