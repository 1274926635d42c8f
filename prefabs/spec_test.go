package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/drube17/bossrush/ecs/component"
)

func TestLoadEmbeddedStages(t *testing.T) {
	spec, err := LoadStages()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(spec.Stages) != 6 {
		t.Fatalf("expected 6 stages, got %d", len(spec.Stages))
	}

	wantGimmicks := map[int]component.GimmickKind{
		1: component.GimmickNone,
		2: component.GimmickMinions,
		3: component.GimmickPhaseShift,
		4: component.GimmickSustainedBeam,
		5: component.GimmickSnipe,
		6: component.GimmickScripted,
	}
	for stage, want := range wantGimmicks {
		st, ok := spec.ByStage(stage)
		if !ok {
			t.Fatalf("stage %d missing", stage)
		}
		got, err := st.GimmickKind()
		if err != nil {
			t.Fatalf("stage %d gimmick: %v", stage, err)
		}
		if got != want {
			t.Fatalf("stage %d gimmick = %s, want %s", stage, got, want)
		}
		if st.Name == "" {
			t.Fatalf("stage %d has no name", stage)
		}
	}

	// only the post-campaign stage is flagged as a bonus
	for _, st := range spec.Stages {
		if st.Bonus != (st.Stage == 6) {
			t.Fatalf("stage %d bonus flag = %v", st.Stage, st.Bonus)
		}
	}

	// the scripted stage's script must actually load
	st, _ := spec.ByStage(6)
	if _, err := Load(st.Script); err != nil {
		t.Fatalf("stage 6 script %q: %v", st.Script, err)
	}

	if _, ok := spec.ByStage(99); ok {
		t.Fatal("ByStage(99) should miss")
	}
}

func TestGimmickKindMapping(t *testing.T) {
	cases := []struct {
		name    string
		spec    StageSpec
		want    component.GimmickKind
		wantErr bool
	}{
		{"empty_means_none", StageSpec{Stage: 1}, component.GimmickNone, false},
		{"case_insensitive", StageSpec{Stage: 1, Gimmick: " Minions "}, component.GimmickMinions, false},
		{"script_needs_file", StageSpec{Stage: 6, Gimmick: "script"}, component.GimmickNone, true},
		{"unknown", StageSpec{Stage: 1, Gimmick: "lasers?"}, component.GimmickNone, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.spec.GimmickKind()
			if c.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %s, want %s", got, c.want)
			}
		})
	}
}

func TestSpriteColor(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want color.NRGBA
	}{
		{"plain_hex", "3066b0", color.NRGBA{R: 0x30, G: 0x66, B: 0xb0, A: 0xff}},
		{"hash_prefix", "#b03030", color.NRGBA{R: 0xb0, G: 0x30, B: 0x30, A: 0xff}},
		{"bad_falls_back", "not-a-color", color.NRGBA{R: 0xb0, G: 0x30, B: 0x30, A: 0xff}},
		{"empty_falls_back", "", color.NRGBA{R: 0xb0, G: 0x30, B: 0x30, A: 0xff}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := (SpriteSpec{Color: c.in}).NRGBA(); got != c.want {
				t.Fatalf("NRGBA(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func writeOverride(t *testing.T, yaml string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bosses.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	SetOverrideDir(dir)
	t.Cleanup(func() { SetOverrideDir("") })
}

func TestLoadStagesValidation(t *testing.T) {
	t.Run("rejects_bad_stage_number", func(t *testing.T) {
		writeOverride(t, `
stages:
  - stage: 0
    name: broken
`)
		if _, err := LoadStages(); err == nil {
			t.Fatal("expected error for stage 0")
		}
	})

	t.Run("rejects_unknown_gimmick", func(t *testing.T) {
		writeOverride(t, `
stages:
  - stage: 1
    name: broken
    gimmick: nonsense
`)
		if _, err := LoadStages(); err == nil {
			t.Fatal("expected error for unknown gimmick")
		}
	})

	t.Run("rejects_empty", func(t *testing.T) {
		writeOverride(t, `stages: []`)
		if _, err := LoadStages(); err == nil {
			t.Fatal("expected error for no stages")
		}
	})

	t.Run("fills_defaults", func(t *testing.T) {
		writeOverride(t, `
stages:
  - stage: 1
    name: sparse
`)
		spec, err := LoadStages()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		st := spec.Stages[0]
		if st.Speed != 90 || st.Sprite.Width != 96 || st.Sprite.Height != 64 {
			t.Fatalf("defaults not applied: %+v", st)
		}
	})
}

func TestLoadPrefersOverrideDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte("x: 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetOverrideDir(dir)
	t.Cleanup(func() { SetOverrideDir("") })

	data, err := Load("custom.yaml")
	if err != nil {
		t.Fatalf("load from override dir failed: %v", err)
	}
	if string(data) != "x: 1" {
		t.Fatalf("unexpected data %q", data)
	}

	// names absent from the override fall back to the embedded files
	if _, err := Load("bosses.yaml"); err != nil {
		t.Fatalf("embedded fallback failed: %v", err)
	}

	if _, err := Load(""); err == nil {
		t.Fatal("empty name should error")
	}
}
