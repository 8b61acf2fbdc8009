package script

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Recorder is the default SceneSink: it keeps a bounded record of dispatched
// commands for the HUD and for tests. Safe for concurrent reads from the draw
// side.
type Recorder struct {
	mu       sync.Mutex
	commands []string
	limit    int
}

func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = 64
	}
	return &Recorder{limit: limit}
}

func (r *Recorder) record(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.commands) >= r.limit {
		return
	}
	r.commands = append(r.commands, s)
}

func (r *Recorder) Prim(kind string, pos mgl64.Vec3) {
	r.record(fmt.Sprintf("prim %s at (%.1f, %.1f, %.1f)", kind, pos.X(), pos.Y(), pos.Z()))
}

func (r *Recorder) Particles(name string, pos mgl64.Vec3) {
	r.record(fmt.Sprintf("particles %s at (%.1f, %.1f, %.1f)", name, pos.X(), pos.Y(), pos.Z()))
}

func (r *Recorder) Sound(name string) {
	r.record(fmt.Sprintf("sound %s", name))
}

func (r *Recorder) Text(s string, pos mgl64.Vec3) {
	r.record(fmt.Sprintf("text %q at (%.1f, %.1f, %.1f)", s, pos.X(), pos.Y(), pos.Z()))
}

// Commands returns a copy of everything recorded so far.
func (r *Recorder) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.commands))
	copy(out, r.commands)
	return out
}
