package avatar

import "github.com/go-gl/mathgl/mgl64"

// Key is a logical movement key. The controller never reads a window library;
// an injected input source translates real key codes into these and feeds them
// through InputHandler, which also makes synthetic input in tests trivial.
type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	KeyJump
	KeyShift
	KeyFly
)

// InputHandler receives key edges from an input source. *Controller implements it.
type InputHandler interface {
	HandleKeyDown(key Key)
	HandleKeyUp(key Key)
}

// GroundProbe is the single downward ray query the controller performs each
// frame against the walkable surface. It reports the surface point under the
// origin when one exists within length units below it.
type GroundProbe interface {
	Probe(origin mgl64.Vec3, length float64) (mgl64.Vec3, bool)
}
