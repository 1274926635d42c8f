package component

// TTL destroys an entity after Seconds of updates. Used for short-lived
// visuals like the boss death flash.
type TTL struct {
	Seconds float64
}

var TTLComponent = NewHandle[TTL]()
