package builder

import (
	"errors"

	"github.com/specialistvlad/robotbuilder/internal/robot"
)

// DefaultSafetyLimit is the number of rolls after which a build is abandoned.
const DefaultSafetyLimit = 1000

// ErrSafetyLimit is returned when a build exceeds its roll budget.
var ErrSafetyLimit = errors.New("Too many rolls, safety check")

// State is the lifecycle state of a build.
type State int

const (
	InProgress State = iota
	Completed
	AbortedSafety
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Completed:
		return "completed"
	case AbortedSafety:
		return "aborted_safety"
	default:
		return "unknown"
	}
}

// Addition describes one accepted roll.
type Addition struct {
	Part   robot.PartType
	Counts robot.Counts
	Rolls  int
}

// Result is the outcome of a build.
type Result struct {
	State  State
	Counts robot.Counts
	Rolls  int
}

// Reporter receives progress from a build.
type Reporter interface {
	PartAdded(Addition)
	Completed(Result)
}

// MismatchReporter is implemented by reporters that also want the completion
// diagnostic: after each addition, the first part still short of its target.
type MismatchReporter interface {
	Mismatch(part robot.PartType, counts, target robot.Counts)
}
