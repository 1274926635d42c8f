package pattern

import (
	"fmt"
	"image/color"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/drube17/bossrush/common"
)

// Script is a tengo-scripted pattern for bonus stages. The script reads
// the globals bx, by, px, py and assigns `shots`, an array of maps with
// speed, angle and damage keys:
//
//	math := import("math")
//	shots := []
//	for i := 0; i < 8; i++ {
//	    shots = append(shots, {speed: 90, angle: 2 * math.pi * i / 8, damage: 10})
//	}
type Script struct {
	name     string
	compiled *tengo.Compiled
}

var scriptColor = color.NRGBA{R: 0xc0, G: 0x60, B: 0xff, A: 0xff}

// CompileScript compiles a pattern script once; Shots clones the
// compiled form per call.
func CompileScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))
	for _, global := range []string{"bx", "by", "px", "py"} {
		if err := script.Add(global, 0.0); err != nil {
			return nil, fmt.Errorf("pattern: script %s: add %s: %w", name, global, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("pattern: compile script %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

// Name returns the script's source name.
func (s *Script) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Shots runs the script against the given positions and converts its
// result into shot descriptors. Entries with non-finite numbers are
// dropped at this boundary.
func (s *Script) Shots(bx, by, px, py float64) ([]Shot, error) {
	if s == nil || s.compiled == nil {
		return nil, fmt.Errorf("pattern: script not compiled")
	}
	if !common.Finite(bx, by, px, py) {
		return nil, fmt.Errorf("pattern: script %s: non-finite positions", s.name)
	}

	run := s.compiled.Clone()
	for global, v := range map[string]float64{"bx": bx, "by": by, "px": px, "py": py} {
		if err := run.Set(global, v); err != nil {
			return nil, fmt.Errorf("pattern: script %s: set %s: %w", s.name, global, err)
		}
	}
	if err := run.Run(); err != nil {
		return nil, fmt.Errorf("pattern: script %s: run: %w", s.name, err)
	}

	raw := run.Get("shots")
	if raw == nil || raw.IsUndefined() {
		return nil, fmt.Errorf("pattern: script %s: no shots variable", s.name)
	}

	var shots []Shot
	for _, entry := range raw.Array() {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		shot := Shot{
			Speed:  scriptFloat(m, "speed"),
			Angle:  scriptFloat(m, "angle"),
			Damage: scriptFloat(m, "damage"),
			Delay:  scriptFloat(m, "delay"),
			Width:  shotWidth,
			Height: shotHeight,
			Color:  scriptColor,
		}
		if !common.Finite(shot.Speed, shot.Angle, shot.Damage, shot.Delay) || shot.Speed <= 0 {
			continue
		}
		if shot.Damage <= 0 {
			shot.Damage = basicDamage
		}
		shots = append(shots, shot)
	}
	return shots, nil
}

func scriptFloat(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}
