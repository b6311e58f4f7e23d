// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package compat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CamelotKey is a parsed Camelot wheel position.
type CamelotKey struct {
	Number int  // 1-12
	Letter byte // 'A' (minor) or 'B' (major)
}

var camelotKeyRegex = regexp.MustCompile(`^(\d{1,2})([AB])$`)

// ParseCamelotKey parses a key such as "8A". Input is trimmed and upper-cased.
func ParseCamelotKey(key string) (CamelotKey, error) {
	key = strings.ToUpper(strings.TrimSpace(key))
	if key == "" {
		return CamelotKey{}, fmt.Errorf("empty key")
	}

	matches := camelotKeyRegex.FindStringSubmatch(key)
	if len(matches) != 3 {
		return CamelotKey{}, fmt.Errorf("invalid key format: %s", key)
	}

	number, err := strconv.Atoi(matches[1])
	if err != nil || number < 1 || number > 12 {
		return CamelotKey{}, fmt.Errorf("invalid key number: %s", matches[1])
	}

	return CamelotKey{Number: number, Letter: matches[2][0]}, nil
}

// String returns the Camelot notation, e.g. "8A".
func (k CamelotKey) String() string {
	return fmt.Sprintf("%d%c", k.Number, k.Letter)
}

// wheelDistance is the shortest number of steps around the wheel between two
// numbers, ignoring the letter.
func wheelDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if 12-d < d {
		return 12 - d
	}
	return d
}

// Adjacent reports whether two keys are one step apart on the wheel: the
// relative major/minor, or a neighbouring number with the same letter.
func (k CamelotKey) Adjacent(other CamelotKey) bool {
	if k.Number == other.Number {
		return k.Letter != other.Letter
	}
	return k.Letter == other.Letter && wheelDistance(k.Number, other.Number) == 1
}

// KeyScore scores a key transition: 1.0 identical, 0.8 adjacent, otherwise
// decaying by 0.1 per wheel step from 0.5.
func KeyScore(a, b CamelotKey) float64 {
	if a == b {
		return 1.0
	}
	if a.Adjacent(b) {
		return 0.8
	}
	return max(0, 0.5-float64(wheelDistance(a.Number, b.Number))*0.1)
}
