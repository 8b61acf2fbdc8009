package avatar

// MovementState classifies the controller's physical state for a single frame.
// It is the only contract between the locomotion controller and the animator.
type MovementState string

const (
	MoveIdle    MovementState = "idle"
	MoveWalking MovementState = "walking"
	MoveRunning MovementState = "running"
	MoveJumping MovementState = "jumping"
	MoveFalling MovementState = "falling"
	MoveFlying  MovementState = "flying"
)
