// Package inputsrc polls the ebiten keyboard and forwards key edges to an
// avatar.InputHandler. Only transitions are forwarded; the controller keeps
// its own held-key state.
package inputsrc

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/fennwick/groundview/avatar"
)

var bindings = []struct {
	ebiten ebiten.Key
	key    avatar.Key
}{
	{ebiten.KeyW, avatar.KeyForward},
	{ebiten.KeyUp, avatar.KeyForward},
	{ebiten.KeyS, avatar.KeyBackward},
	{ebiten.KeyDown, avatar.KeyBackward},
	{ebiten.KeyA, avatar.KeyLeft},
	{ebiten.KeyLeft, avatar.KeyLeft},
	{ebiten.KeyD, avatar.KeyRight},
	{ebiten.KeyRight, avatar.KeyRight},
	{ebiten.KeySpace, avatar.KeyJump},
	{ebiten.KeyShiftLeft, avatar.KeyShift},
	{ebiten.KeyShiftRight, avatar.KeyShift},
	{ebiten.KeyF, avatar.KeyFly},
}

// Keyboard is the live ebiten-backed source.
type Keyboard struct {
	handler avatar.InputHandler
}

func NewKeyboard(handler avatar.InputHandler) *Keyboard {
	return &Keyboard{handler: handler}
}

// Poll runs once per tick, before the controller update.
func (k *Keyboard) Poll() {
	if k == nil || k.handler == nil {
		return
	}
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.ebiten) {
			k.handler.HandleKeyDown(b.key)
		}
		if inpututil.IsKeyJustReleased(b.ebiten) {
			k.handler.HandleKeyUp(b.key)
		}
	}
}
