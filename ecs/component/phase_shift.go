package component

// PhaseShiftState is the teleport gimmick's sub-machine. While it is
// anything but idle the gimmick has exclusive control of the boss and the
// world time-stop flag is asserted.
type PhaseShiftState int

const (
	PhaseIdle PhaseShiftState = iota
	PhaseBlackoutIn
	PhaseTeleporting
	PhaseBlackoutOut
)

func (s PhaseShiftState) String() string {
	switch s {
	case PhaseIdle:
		return "idle"
	case PhaseBlackoutIn:
		return "blackout_in"
	case PhaseTeleporting:
		return "teleporting"
	case PhaseBlackoutOut:
		return "blackout_out"
	}
	return "unknown"
}

// PhaseShift holds the sub-machine state. Elapsed resets on every
// transition.
type PhaseShift struct {
	State   PhaseShiftState
	Elapsed float64
}

// Executing reports whether the gimmick currently owns the boss tick.
func (p *PhaseShift) Executing() bool {
	return p != nil && p.State != PhaseIdle
}

var PhaseShiftComponent = NewHandle[PhaseShift]()
