// SPDX-License-Identifier: MIT

package pagerank

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDamping indicates a damping factor outside the open interval (0,1).
	ErrInvalidDamping = errors.New("pagerank: damping must lie in (0,1)")

	// ErrNoUniqueSteadyState indicates that the null space of G − I is not
	// one-dimensional: the walk has no steady state or several. Callers
	// receive a *SteadyStateError carrying the basis size.
	ErrNoUniqueSteadyState = errors.New("pagerank: no unique steady state")

	// ErrNotConverged indicates that power iteration hit its iteration cap.
	ErrNotConverged = errors.New("pagerank: power iteration did not converge")

	// ErrUnknownMethod indicates a solver name other than auto, nullspace or power.
	ErrUnknownMethod = errors.New("pagerank: unknown method")
)

// SteadyStateError reports how many null-space basis vectors were found
// where exactly one was required.
type SteadyStateError struct {
	Count int
	// Classes lists the closed classes of the walk as sorted matrix indices.
	// Each closed class traps the walk and carries its own steady state.
	Classes [][]int
}

func (e *SteadyStateError) Error() string {
	return fmt.Sprintf("%s: null space has %d basis vectors", ErrNoUniqueSteadyState, e.Count)
}

// Is makes errors.Is(err, ErrNoUniqueSteadyState) hold.
func (e *SteadyStateError) Is(target error) bool { return target == ErrNoUniqueSteadyState }
