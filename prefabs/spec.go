package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/drube17/bossrush/ecs/component"
)

// StagesSpec is the root of bosses.yaml.
type StagesSpec struct {
	Stages []StageSpec `yaml:"stages"`
}

// StageSpec configures one boss stage. Health and score are not listed
// here: they derive from the stage number.
type StageSpec struct {
	Stage   int        `yaml:"stage"`
	Name    string     `yaml:"name"`
	Gimmick string     `yaml:"gimmick"`
	Script  string     `yaml:"script"`
	Speed   float64    `yaml:"speed"`
	Bonus   bool       `yaml:"bonus"`
	Sprite  SpriteSpec `yaml:"sprite"`
}

type SpriteSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// GimmickKind maps the yaml gimmick name onto the tagged variant.
func (s *StageSpec) GimmickKind() (component.GimmickKind, error) {
	switch strings.ToLower(strings.TrimSpace(s.Gimmick)) {
	case "", "none":
		return component.GimmickNone, nil
	case "minions":
		return component.GimmickMinions, nil
	case "phase_shift":
		return component.GimmickPhaseShift, nil
	case "beam":
		return component.GimmickSustainedBeam, nil
	case "snipe":
		return component.GimmickSnipe, nil
	case "script":
		if s.Script == "" {
			return component.GimmickNone, fmt.Errorf("prefabs: stage %d: script gimmick without script file", s.Stage)
		}
		return component.GimmickScripted, nil
	}
	return component.GimmickNone, fmt.Errorf("prefabs: stage %d: unknown gimmick %q", s.Stage, s.Gimmick)
}

// NRGBA parses the sprite color, falling back to a plain placeholder red
// so a bad color never stops a stage from loading.
func (s SpriteSpec) NRGBA() color.NRGBA {
	c, err := parseHexColor(s.Color)
	if err != nil {
		return color.NRGBA{R: 0xb0, G: 0x30, B: 0x30, A: 0xff}
	}
	return c
}

func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("prefabs: bad color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("prefabs: bad color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// LoadStages reads and validates bosses.yaml.
func LoadStages() (*StagesSpec, error) {
	data, err := Load("bosses.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load bosses.yaml: %w", err)
	}
	var spec StagesSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal bosses.yaml: %w", err)
	}
	if len(spec.Stages) == 0 {
		return nil, fmt.Errorf("prefabs: bosses.yaml defines no stages")
	}
	for i := range spec.Stages {
		st := &spec.Stages[i]
		if st.Stage < 1 {
			return nil, fmt.Errorf("prefabs: stage entry %d has invalid stage number %d", i, st.Stage)
		}
		if _, err := st.GimmickKind(); err != nil {
			return nil, err
		}
		if st.Speed <= 0 {
			st.Speed = 90
		}
		if st.Sprite.Width <= 0 {
			st.Sprite.Width = 96
		}
		if st.Sprite.Height <= 0 {
			st.Sprite.Height = 64
		}
	}
	return &spec, nil
}

// ByStage returns the spec for a stage number, if defined.
func (s *StagesSpec) ByStage(stage int) (*StageSpec, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Stages {
		if s.Stages[i].Stage == stage {
			return &s.Stages[i], true
		}
	}
	return nil, false
}
