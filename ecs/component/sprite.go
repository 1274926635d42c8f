package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite describes how an entity is drawn. When Image is nil the renderer
// falls back to a solid Color rect of Width x Height, so a missing asset
// never affects simulation state.
type Sprite struct {
	Image  *ebiten.Image
	Width  float64
	Height float64
	Color  color.NRGBA
}

type RenderLayer struct {
	Index int
}

var SpriteComponent = NewHandle[Sprite]()
var RenderLayerComponent = NewHandle[RenderLayer]()
