package component

// WorldSignals carries cross-entity flags that would otherwise be ambient
// globals. The game owns one instance and hands it to the systems that
// read or write it; the phase-shift gimmick is the only writer of
// TimeStop, and there is one boss per stage, so the single-writer
// contract holds.
type WorldSignals struct {
	// TimeStop freezes motion and timers for every entity outside the
	// sub-machine that raised it.
	TimeStop bool
	// BlackoutAlpha is the phase-shift screen overlay opacity in [0, 1],
	// consumed by the renderer.
	BlackoutAlpha float64
}
