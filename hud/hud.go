// Package hud draws the debug overlay: avatar state, transform, and the most
// recent scene-script commands.
package hud

import (
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/fennwick/groundview/avatar"
)

// Snapshot is the per-frame state the overlay renders. The game fills it so
// the HUD never reaches back into the controller mid-draw.
type Snapshot struct {
	Movement avatar.MovementState
	Anim     avatar.AnimState
	Position [3]float64
	Yaw      float64
	Grounded bool
	Flying   bool
	Session  string
	Commands []string
}

type HUD struct {
	enabled bool
}

func New(enabled bool) *HUD {
	return &HUD{enabled: enabled}
}

func (h *HUD) Toggle() { h.enabled = !h.enabled }

func (h *HUD) Enabled() bool { return h != nil && h.enabled }

func (h *HUD) Draw(screen *ebiten.Image, snap Snapshot) {
	if !h.Enabled() {
		return
	}
	lines := []string{
		fmt.Sprintf("session %s  tps %0.0f  fps %0.0f", snap.Session, ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("move %s  anim %s", snap.Movement, snap.Anim),
		fmt.Sprintf("pos (%0.2f, %0.2f, %0.2f)  yaw %0.2f", snap.Position[0], snap.Position[1], snap.Position[2], snap.Yaw),
		fmt.Sprintf("grounded %t  flying %t", snap.Grounded, snap.Flying),
	}
	if len(snap.Commands) > 0 {
		lines = append(lines, "script:")
		for _, c := range snap.Commands {
			lines = append(lines, "  "+c)
		}
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 8, 8)
	h.drawStateDot(screen, snap)
}

// drawStateDot paints a small marker top-right keyed to the movement state so
// state flips are visible even when the text is hard to read over terrain.
func (h *HUD) drawStateDot(screen *ebiten.Image, snap Snapshot) {
	c := colornames.Gray
	switch snap.Movement {
	case avatar.MoveWalking:
		c = colornames.Lightgreen
	case avatar.MoveRunning:
		c = colornames.Green
	case avatar.MoveJumping:
		c = colornames.Gold
	case avatar.MoveFalling:
		c = colornames.Orangered
	case avatar.MoveFlying:
		c = colornames.Deepskyblue
	}
	w := screen.Bounds().Dx()
	dot := screen.SubImage(image.Rect(w-16, 8, w-8, 16)).(*ebiten.Image)
	dot.Fill(c)
}
