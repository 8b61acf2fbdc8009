// Package script executes the payload's scene script once after load. Scripts
// issue scene commands (prims, particles, sound, floating text) through a
// SceneSink; the core never sees them.
package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// SceneSink receives scene commands dispatched from a script.
type SceneSink interface {
	Prim(kind string, pos mgl64.Vec3)
	Particles(name string, pos mgl64.Vec3)
	Sound(name string)
	Text(s string, pos mgl64.Vec3)
}

// Run compiles and executes src with the scene commands bound as globals.
// Script errors are returned for the caller to log and report; they are never
// fatal to the viewer.
func Run(src string, sink SceneSink, log zerolog.Logger) error {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	if sink == nil {
		return fmt.Errorf("script: nil scene sink")
	}

	script := tengo.NewScript([]byte(src))
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	for name, fn := range sceneFuncs(sink, log) {
		if err := script.Add(name, fn); err != nil {
			return fmt.Errorf("script: bind %s: %w", name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("script: compile: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("script: run: %w", err)
	}
	return nil
}

func sceneFuncs(sink SceneSink, log zerolog.Logger) map[string]*tengo.UserFunction {
	vec := func(args []tengo.Object, from int) mgl64.Vec3 {
		var v mgl64.Vec3
		for i := 0; i < 3 && from+i < len(args); i++ {
			v[i] = objectAsFloat(args[from+i])
		}
		return v
	}

	return map[string]*tengo.UserFunction{
		"prim": {Name: "prim", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			kind := objectAsString(args[0])
			if kind == "" {
				return tengo.FalseValue, nil
			}
			sink.Prim(kind, vec(args, 1))
			return tengo.TrueValue, nil
		}},
		"particles": {Name: "particles", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			name := objectAsString(args[0])
			if name == "" {
				return tengo.FalseValue, nil
			}
			sink.Particles(name, vec(args, 1))
			return tengo.TrueValue, nil
		}},
		"sound": {Name: "sound", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			name := objectAsString(args[0])
			if name == "" {
				return tengo.FalseValue, nil
			}
			sink.Sound(name)
			return tengo.TrueValue, nil
		}},
		"text": {Name: "text", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			s := objectAsString(args[0])
			sink.Text(s, vec(args, 1))
			return tengo.TrueValue, nil
		}},
		"log": {Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
			parts := make([]string, 0, len(args))
			for _, a := range args {
				parts = append(parts, objectAsString(a))
			}
			log.Info().Str("source", "script").Msg(strings.Join(parts, " "))
			return tengo.UndefinedValue, nil
		}},
	}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectAsFloat(obj tengo.Object) float64 {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value
	case *tengo.Int:
		return float64(v.Value)
	default:
		return 0
	}
}
