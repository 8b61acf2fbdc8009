package main

import (
	"image"
	"image/color"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"

	"github.com/fennwick/groundview/avatar"
	"github.com/fennwick/groundview/bridge"
	"github.com/fennwick/groundview/camera"
	"github.com/fennwick/groundview/common"
	"github.com/fennwick/groundview/hud"
	"github.com/fennwick/groundview/inputsrc"
	"github.com/fennwick/groundview/payload"
	"github.com/fennwick/groundview/script"
	"github.com/fennwick/groundview/terrain"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	minimapSize   = 160
	minimapMargin = 12
)

var clipNames = []string{"idle", "walk", "run", "jump", "fall", "land", "fly"}

// sceneClip is the debug-shell clip backend: it records what the animator
// asked for so the HUD can show the live clip without a real animation engine.
type sceneClip struct {
	name    string
	playing bool
	loop    bool
	speed   float64
	weight  float64
}

func (c *sceneClip) Start(loop bool, speedRatio float64) {
	c.playing = true
	c.loop = loop
	c.speed = speedRatio
}

func (c *sceneClip) Stop() { c.playing = false }

func (c *sceneClip) SetWeight(weight float64) { c.weight = weight }

type Game struct {
	log     zerolog.Logger
	session string

	field      *terrain.Heightfield
	vegetation []terrain.Instance
	minimap    *ebiten.Image

	keyboard   *inputsrc.Keyboard
	controller *avatar.Controller
	animator   *avatar.Animator
	clips      map[string]*sceneClip

	orbit    *camera.Orbit
	shoulder *camera.Shoulder
	useOrbit bool

	overlay  *hud.HUD
	recorder *script.Recorder
	host     *bridge.Bridge

	tuningCh chan avatar.Tuning
	lastTick time.Time
	lastAnim avatar.AnimState
	disposed atomic.Bool
}

func NewGame(p *payload.Payload, tun avatar.Tuning, host *bridge.Bridge, debug bool, log zerolog.Logger) *Game {
	field := buildField(p.Terrain)

	spawn := p.Avatar.Spawn.Vec()
	ground, onField := field.HeightAt(spawn.X(), spawn.Z())
	if !onField {
		// an off-field spawn would free-fall and respawn forever
		log.Warn().
			Float64("x", spawn.X()).
			Float64("z", spawn.Z()).
			Msg("game: spawn outside terrain, moving to field center")
		spawn[0], spawn[2] = 0, 0
		ground, _ = field.HeightAt(0, 0)
	}
	if spawn.Y() < ground {
		spawn[1] = ground
	}
	tun.Spawn = spawn

	controller := avatar.NewController(spawn, p.Avatar.Yaw, field, tun, log)
	animator := avatar.NewAnimator(log)

	clips := make(map[string]*sceneClip)
	bound := make(map[string]avatar.Clip)
	for _, name := range clipSet(p.Clips) {
		c := &sceneClip{name: name}
		clips[name] = c
		bound[name] = c
	}
	animator.BindClips(bound)

	recorder := script.NewRecorder(8)
	if err := script.Run(p.Script, recorder, log); err != nil {
		log.Warn().Err(err).Msg("game: scene script failed")
		host.Error(err)
	}

	g := &Game{
		log:        log,
		session:    p.Session,
		field:      field,
		vegetation: terrain.Scatter(field, p.Terrain.VegetationDensity, p.Terrain.Seed),
		keyboard:   inputsrc.NewKeyboard(controller),
		controller: controller,
		animator:   animator,
		clips:      clips,
		orbit:      camera.NewOrbit(8),
		shoulder:   camera.NewShoulder(),
		overlay:    hud.New(debug),
		recorder:   recorder,
		host:       host,
		tuningCh:   make(chan avatar.Tuning, 1),
		lastAnim:   animator.State(),
	}
	g.minimap = g.bakeMinimap()

	go host.Listen(func() { g.disposed.Store(true) })
	return g
}

func buildField(spec payload.TerrainSpec) *terrain.Heightfield {
	if len(spec.Heights) > 0 {
		field, err := terrain.New(spec.Size, spec.Spacing, spec.Heights)
		if err == nil {
			return field
		}
	}
	return terrain.Generate(spec.Size, spec.Spacing, spec.Amplitude, spec.Seed)
}

func clipSet(requested []string) []string {
	if len(requested) == 0 {
		return clipNames
	}
	return requested
}

// QueueTuning hands a hot-reloaded tuning to the game loop; it is applied at
// the top of the next Update so the controller is never touched off-loop.
func (g *Game) QueueTuning(t avatar.Tuning) {
	select {
	case g.tuningCh <- t:
	default:
		// a newer value is already pending
	}
}

func (g *Game) Update() error {
	if g.disposed.Load() {
		return ebiten.Termination
	}

	select {
	case t := <-g.tuningCh:
		t.Spawn = g.controller.Position()
		g.controller.SetTuning(t)
		g.log.Info().Msg("game: tuning reloaded")
	default:
	}

	dt := g.tick()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.useOrbit = !g.useOrbit
	}

	g.keyboard.Poll()
	g.controller.Update(dt)
	g.animator.Update(g.controller.MovementState(), dt)

	if state := g.animator.State(); state != g.lastAnim {
		g.lastAnim = state
		g.host.StateChanged(string(state))
	}

	pos := g.controller.Position()
	if g.useOrbit {
		g.orbit.Yaw = g.controller.Yaw()
		g.orbit.Follow(pos, dt)
	} else {
		g.shoulder.Follow(pos, g.controller.Yaw(), dt)
	}

	return nil
}

func (g *Game) tick() float64 {
	now := time.Now()
	if g.lastTick.IsZero() {
		g.lastTick = now
		return 1.0 / float64(ebiten.TPS())
	}
	dt := now.Sub(g.lastTick).Seconds()
	g.lastTick = now
	return dt
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackdrop(screen)
	g.drawMinimap(screen)

	pos := g.controller.Position()
	g.overlay.Draw(screen, hud.Snapshot{
		Movement: g.controller.MovementState(),
		Anim:     g.animator.State(),
		Position: [3]float64{pos.X(), pos.Y(), pos.Z()},
		Yaw:      g.controller.Yaw(),
		Grounded: g.controller.Grounded(),
		Flying:   g.controller.Flying(),
		Session:  g.session,
		Commands: g.recorder.Commands(),
	})
}

// drawBackdrop splits the screen at a horizon line driven by the active
// camera's eye height, so moving vertically reads even in the debug shell.
func (g *Game) drawBackdrop(screen *ebiten.Image) {
	eye := g.shoulder.Eye()
	if g.useOrbit {
		eye = g.orbit.Eye()
	}

	horizon := baseHeight/2 + int(eye.Y()*6)
	if horizon < 0 {
		horizon = 0
	}
	if horizon > baseHeight {
		horizon = baseHeight
	}

	screen.Fill(colornames.Skyblue)
	if horizon < baseHeight {
		ground := screen.SubImage(image.Rect(0, horizon, baseWidth, baseHeight)).(*ebiten.Image)
		ground.Fill(colornames.Darkolivegreen)
	}
}

// minimapCell maps a world coordinate on the origin-centered field, spanning
// [-extent, extent], to a minimap pixel index.
func minimapCell(v, extent float64) int {
	return int(math.Round((v + extent) / (2 * extent) * float64(minimapSize-1)))
}

// minimapWorld is the inverse: pixel index back to a world coordinate.
func minimapWorld(cell int, extent float64) float64 {
	return float64(cell)/float64(minimapSize-1)*2*extent - extent
}

// bakeMinimap renders the static heightfield shading and vegetation once;
// heights never change after load.
func (g *Game) bakeMinimap() *ebiten.Image {
	img := ebiten.NewImage(minimapSize, minimapSize)
	extent := g.field.Extent()
	if extent <= 0 {
		return img
	}

	px := make([]byte, 4*minimapSize*minimapSize)
	for py := 0; py < minimapSize; py++ {
		for pxi := 0; pxi < minimapSize; pxi++ {
			x := minimapWorld(pxi, extent)
			z := minimapWorld(py, extent)
			shade := uint8(40)
			if h, ok := g.field.HeightAt(x, z); ok {
				shade = uint8(common.Clamp(110+h*18, 40, 220))
			}
			i := 4 * (py*minimapSize + pxi)
			px[i], px[i+1], px[i+2], px[i+3] = shade/2, shade, shade/2, 0xff
		}
	}
	img.WritePixels(px)

	for _, inst := range g.vegetation {
		img.Set(minimapCell(inst.Pos.X(), extent), minimapCell(inst.Pos.Z(), extent), colornames.Forestgreen)
	}
	return img
}

func (g *Game) drawMinimap(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	x := float64(baseWidth - minimapSize - minimapMargin)
	y := float64(baseHeight - minimapSize - minimapMargin)
	op.GeoM.Translate(x, y)
	screen.DrawImage(g.minimap, op)

	extent := g.field.Extent()
	if extent <= 0 {
		return
	}
	// clamp so an off-field avatar pins to the widget edge instead of
	// painting over the scene
	pos := g.controller.Position()
	ax := int(x) + int(common.Clamp(float64(minimapCell(pos.X(), extent)), 0, minimapSize-1))
	ay := int(y) + int(common.Clamp(float64(minimapCell(pos.Z(), extent)), 0, minimapSize-1))
	dot := screen.SubImage(image.Rect(ax-2, ay-2, ax+2, ay+2)).(*ebiten.Image)
	c := color.Color(colornames.White)
	if g.controller.Flying() {
		c = colornames.Deepskyblue
	}
	dot.Fill(c)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
