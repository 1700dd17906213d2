package ilp

import (
	"errors"
	"fmt"
)

// ErrNoOptimalSolution is returned when Solve's branch-and-bound search
// exhausts its search space without finding a feasible assignment — the
// block-diagonal program has no 0/1 point satisfying every row.
var ErrNoOptimalSolution = errors.New("ilp: no optimal solution found")

// ErrEmptyInstance is returned when NewProgram is given no valuations.
var ErrEmptyInstance = errors.New("ilp: empty instance")

// ExtentMismatchError reports that two valuations being assembled into
// one Program are defined over different-sized item universes.
type ExtentMismatchError struct {
	Expected int
	Got      int
}

func (e ExtentMismatchError) Error() string {
	return fmt.Sprintf("ilp: NewProgram: all valuations must share one extent: expected %d, got %d", e.Expected, e.Got)
}
