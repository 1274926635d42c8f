package common

// Screen dimensions in world units. The playfield is a vertical arena:
// the player moves along the bottom, bosses hold the top third.
const (
	ScreenWidth  = 600
	ScreenHeight = 800
)

// Horizontal margin bosses keep from the screen edges while oscillating.
const BossEdgeMargin = 24
