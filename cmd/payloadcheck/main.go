// payloadcheck validates spawn payload files and prints what the viewer would
// build from them. Useful to host-tool authors before wiring the bridge.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fennwick/groundview/payload"
	"github.com/fennwick/groundview/terrain"
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatal("usage: payloadcheck <payload.json> [...]")
	}

	failed := false
	for _, path := range flag.Args() {
		if err := check(path); err != nil {
			fmt.Printf("%s: INVALID: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func check(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	p, err := payload.Parse(raw)
	if err != nil {
		return err
	}

	var field *terrain.Heightfield
	if len(p.Terrain.Heights) > 0 {
		field, err = terrain.New(p.Terrain.Size, p.Terrain.Spacing, p.Terrain.Heights)
		if err != nil {
			return err
		}
	} else {
		field = terrain.Generate(p.Terrain.Size, p.Terrain.Spacing, p.Terrain.Amplitude, p.Terrain.Seed)
	}

	spawn := p.Avatar.Spawn
	ground, onField := field.HeightAt(spawn.X, spawn.Z)
	veg := terrain.Scatter(field, p.Terrain.VegetationDensity, p.Terrain.Seed)

	fmt.Printf("%s: ok\n", path)
	fmt.Printf("  session    %s\n", p.Session)
	fmt.Printf("  terrain    %dx%d grid, spacing %g, extent %g\n",
		p.Terrain.Size, p.Terrain.Size, p.Terrain.Spacing, field.Extent())
	fmt.Printf("  vegetation %d instances\n", len(veg))
	if onField {
		fmt.Printf("  spawn      (%g, %g, %g), ground at %g\n", spawn.X, spawn.Y, spawn.Z, ground)
	} else {
		fmt.Printf("  spawn      (%g, %g, %g), WARNING: outside terrain\n", spawn.X, spawn.Y, spawn.Z)
	}
	if len(p.Clips) > 0 {
		fmt.Printf("  clips      %v\n", p.Clips)
	}
	if p.Script != "" {
		fmt.Printf("  script     %d bytes\n", len(p.Script))
	}
	return nil
}
