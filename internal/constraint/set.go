// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package constraint

// Set is an ordered collection of constraints.
type Set []Constraint

// Hard returns the hard constraints in order.
func (s Set) Hard() Set {
	return s.filter(func(c Constraint) bool { return c.Kind == Hard })
}

// Scored returns the soft and preference constraints in order.
func (s Set) Scored() Set {
	return s.filter(func(c Constraint) bool { return c.Kind != Hard })
}

func (s Set) filter(keep func(Constraint) bool) Set {
	var out Set
	for _, c := range s {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Without returns the set minus the named constraints.
func (s Set) Without(names ...string) Set {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	return s.filter(func(c Constraint) bool { return !drop[c.Name] })
}

// CheckHard reports whether every hard constraint holds on p.
func (s Set) CheckHard(p Path) (bool, error) {
	for _, c := range s {
		if c.Kind != Hard {
			continue
		}
		ok, err := c.Evaluate(p)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Violations evaluates every constraint on a complete path and returns the
// ones that fail.
func (s Set) Violations(p Path) ([]Violation, error) {
	var out []Violation
	for _, c := range s {
		ok, err := c.Evaluate(p)
		if err != nil {
			return nil, err
		}
		if !ok {
			out = append(out, Violation{Name: c.Name, Kind: c.Kind, Penalty: c.Penalty})
		}
	}
	return out, nil
}

// TotalPenalty sums the penalties of the violations.
func TotalPenalty(vs []Violation) float64 {
	var sum float64
	for _, v := range vs {
		sum += v.Penalty
	}
	return sum
}
