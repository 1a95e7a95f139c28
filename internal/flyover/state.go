package flyover

import "fmt"

// State is a step of the flyover lookup pipeline
type State int

const (
	StateNotStarted State = iota
	StateResolvingIP
	StateResolvingCoords
	StateResolvingPasses
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateResolvingIP:
		return "ResolvingIP"
	case StateResolvingCoords:
		return "ResolvingCoords"
	case StateResolvingPasses:
		return "ResolvingPasses"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Unknown (%d)", int(s))
	}
}
