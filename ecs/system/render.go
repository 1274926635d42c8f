package system

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/drube17/bossrush/common"
	"github.com/drube17/bossrush/ecs"
	"github.com/drube17/bossrush/ecs/component"
)

var beamColor = color.NRGBA{R: 0xff, G: 0x50, B: 0x50, A: 0xb0}

// RenderSystem draws sprites, beams, the boss health bar, and the
// phase-shift blackout overlay. Entities without an image fall back to a
// solid color rect so a missing asset never breaks a frame.
type RenderSystem struct {
	signals *component.WorldSignals
	white   *ebiten.Image
}

func NewRenderSystem(signals *component.WorldSignals) *RenderSystem {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &RenderSystem{signals: signals, white: white}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	type drawable struct {
		e     ecs.Entity
		tr    *component.Transform
		s     *component.Sprite
		layer int
	}
	var items []drawable
	ecs.ForEach2(w, component.SpriteComponent, component.TransformComponent,
		func(e ecs.Entity, s *component.Sprite, tr *component.Transform) {
			layer := 0
			if rl, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
				layer = rl.Index
			}
			items = append(items, drawable{e: e, tr: tr, s: s, layer: layer})
		})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return items[i].e < items[j].e
	})

	for _, it := range items {
		// Dead bosses keep their components but disappear from view.
		if rt, ok := ecs.Get(w, it.e, component.BossRuntimeComponent); ok && rt.State == component.BossDead {
			continue
		}
		r.drawSprite(screen, it.tr, it.s)
	}

	r.drawBeams(w, screen)
	r.drawBossBar(w, screen)

	if r.signals != nil && r.signals.BlackoutAlpha > 0 {
		alpha := common.Clamp01(r.signals.BlackoutAlpha)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(common.ScreenWidth, common.ScreenHeight)
		op.ColorScale.ScaleWithColor(color.NRGBA{A: uint8(alpha * 0xff)})
		screen.DrawImage(r.white, op)
	}
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, tr *component.Transform, s *component.Sprite) {
	if s.Image != nil {
		op := &ebiten.DrawImageOptions{}
		b := s.Image.Bounds()
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Rotate(tr.Rotation)
		op.GeoM.Translate(tr.X, tr.Y)
		screen.DrawImage(s.Image, op)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.Width, s.Height)
	op.GeoM.Translate(-s.Width/2, -s.Height/2)
	op.GeoM.Translate(tr.X, tr.Y)
	op.ColorScale.ScaleWithColor(s.Color)
	screen.DrawImage(r.white, op)
}

func (r *RenderSystem) drawBeams(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach2(w, component.BeamComponent, component.TransformComponent,
		func(_ ecs.Entity, beam *component.Beam, tr *component.Transform) {
			for _, ray := range beam.Rays(tr.X, tr.Y) {
				vector.StrokeLine(screen,
					float32(ray.X), float32(ray.Y),
					float32(ray.X+ray.Length*math.Cos(ray.Angle)),
					float32(ray.Y+ray.Length*math.Sin(ray.Angle)),
					float32(ray.Width), beamColor, false)
			}
		})
}

func (r *RenderSystem) drawBossBar(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach3(w, component.BossComponent, component.BossRuntimeComponent, component.HealthComponent,
		func(_ ecs.Entity, boss *component.Boss, rt *component.BossRuntime, hp *component.Health) {
			if rt.State == component.BossDead || hp.Max <= 0 {
				return
			}
			const barW, barH, barY = common.ScreenWidth - 80.0, 10.0, 16.0
			frac := common.Clamp01(hp.Current / hp.Max)

			bg := &ebiten.DrawImageOptions{}
			bg.GeoM.Scale(barW, barH)
			bg.GeoM.Translate(40, barY)
			bg.ColorScale.ScaleWithColor(color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff})
			screen.DrawImage(r.white, bg)

			fg := &ebiten.DrawImageOptions{}
			fg.GeoM.Scale(barW*frac, barH)
			fg.GeoM.Translate(40, barY)
			fg.ColorScale.ScaleWithColor(color.NRGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff})
			screen.DrawImage(r.white, fg)

			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  (stage %d)", boss.DisplayName, boss.Stage), 40, int(barY)+14)
		})
}
