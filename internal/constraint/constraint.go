// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

// Package constraint defines typed predicates over candidate playlists.
//
// Hard constraints prune search branches and are evaluated on partial paths.
// Soft and preference constraints are evaluated on complete paths and add
// their penalty to the path cost when violated.
package constraint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/mixgraph/internal/track"
)

// ErrEvaluation wraps errors and panics raised by a constraint predicate.
var ErrEvaluation = errors.New("constraint evaluation failed")

// Kind classifies how a constraint is enforced.
type Kind int

// Constraint kinds.
const (
	Hard Kind = iota
	Soft
	Preference
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Hard:
		return "hard"
	case Soft:
		return "soft"
	case Preference:
		return "preference"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind parses "hard", "soft" or "preference".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hard":
		return Hard, nil
	case "soft":
		return Soft, nil
	case "preference":
		return Preference, nil
	default:
		return 0, fmt.Errorf("unknown constraint kind %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Path is a read-only view of an ordered candidate playlist. Metadata is
// normalized. Compatibility(i) is the score of the transition from position
// i to i+1.
type Path interface {
	Len() int
	Track(i int) track.Track
	Metadata(i int) track.Metadata
	Compatibility(i int) float64
}

// Predicate reports whether the path satisfies a constraint. It must not
// retain or modify the path.
type Predicate func(p Path) (bool, error)

// Constraint is an immutable named predicate with a violation penalty.
type Constraint struct {
	Name    string
	Kind    Kind
	Penalty float64
	Check   Predicate
}

// New returns a constraint.
func New(name string, kind Kind, penalty float64, check Predicate) Constraint {
	return Constraint{Name: name, Kind: kind, Penalty: penalty, Check: check}
}

// Evaluate runs the predicate. Predicate errors and panics are reported as
// ErrEvaluation.
func (c Constraint) Evaluate(p Path) (ok bool, err error) {
	if c.Check == nil {
		return false, fmt.Errorf("%w: %s: no predicate", ErrEvaluation, c.Name)
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("%w: %s: panic: %v", ErrEvaluation, c.Name, r)
		}
	}()
	ok, err = c.Check(p)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrEvaluation, c.Name, err)
	}
	return ok, nil
}

// Violation reports a constraint the path does not satisfy.
type Violation struct {
	Name    string  `json:"name"`
	Kind    Kind    `json:"kind"`
	Penalty float64 `json:"penalty"`
}
