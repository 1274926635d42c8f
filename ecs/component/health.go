package component

// Health tracks hit points. Current stays within [0, Max].
type Health struct {
	Current float64
	Max     float64
}

var HealthComponent = NewHandle[Health]()
