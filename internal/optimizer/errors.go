// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a request the optimizer cannot act on. It is
// always wrapped with the specific reason.
var ErrInvalidInput = errors.New("invalid input")

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Outcome records how a search ended.
type Outcome int

// Search outcomes.
const (
	// Searching is the state while the frontier is being expanded.
	Searching Outcome = iota
	// GoalFound means a complete path scored at or under the early
	// termination threshold.
	GoalFound
	// BudgetExhausted means the node budget ran out.
	BudgetExhausted
	// FrontierExhausted means every reachable state was expanded.
	FrontierExhausted
	// ReturnBest means the best complete path found is returned.
	ReturnBest
	// FallbackGreedy means no complete path was found and the greedy
	// construction was returned.
	FallbackGreedy
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Searching:
		return "searching"
	case GoalFound:
		return "goal_found"
	case BudgetExhausted:
		return "budget_exhausted"
	case FrontierExhausted:
		return "frontier_exhausted"
	case ReturnBest:
		return "return_best"
	case FallbackGreedy:
		return "fallback_greedy"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
