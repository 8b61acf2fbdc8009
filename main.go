package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/fennwick/groundview/bridge"
	"github.com/fennwick/groundview/payload"
	"github.com/fennwick/groundview/tuning"
)

func main() {
	payloadPath := flag.String("payload", "", "spawn payload JSON file (default: built-in demo scene)")
	hostURL := flag.String("host", "", "websocket URL of the embedding host (empty: run standalone)")
	tuningName := flag.String("tuning", "viewer.yaml", "tuning spec in tuning/")
	debug := flag.Bool("debug", true, "show the debug overlay")
	verbose := flag.Bool("v", false, "debug-level logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	p, err := loadPayload(*payloadPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load payload")
	}

	spec, err := tuning.Load(*tuningName)
	if err != nil {
		log.Fatal().Err(err).Str("name", *tuningName).Msg("load tuning")
	}

	var host *bridge.Bridge
	if *hostURL != "" {
		host, err = bridge.Dial(*hostURL, p.Session, log)
		if err != nil {
			// the viewer is useful standalone; a missing host is not fatal
			log.Warn().Err(err).Msg("host unreachable, running standalone")
		}
	}
	defer host.Close()

	game := NewGame(p, spec.Tuning(), host, *debug, log)

	if watcher, err := tuning.NewWatcher("tuning", *tuningName, log); err == nil {
		defer watcher.Close()
		go func() {
			for t := range watcher.Tunings {
				game.QueueTuning(t)
			}
		}()
	} else if *verbose {
		log.Debug().Err(err).Msg("tuning hot reload unavailable")
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("groundview " + p.Session)

	host.Ready()
	err = ebiten.RunGame(game)
	host.Disposed()
	if err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}

func loadPayload(path string) (*payload.Payload, error) {
	if path == "" {
		return demoPayload(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return payload.Parse(raw)
}

// demoPayload is the standalone scene used when no host supplies one.
func demoPayload() *payload.Payload {
	return &payload.Payload{
		Session: "standalone",
		Terrain: payload.TerrainSpec{
			Size:              48,
			Spacing:           2,
			Seed:              9,
			Amplitude:         3,
			VegetationDensity: 2,
		},
		Avatar: payload.AvatarSpec{Spawn: payload.Vec3{Y: 4}},
		Script: `prim("box", 6, 1, -4)
text("welcome", 0, 3, -6)`,
	}
}
