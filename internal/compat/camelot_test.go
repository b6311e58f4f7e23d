// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package compat

import (
	"math"
	"testing"
)

func TestParseCamelotKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    CamelotKey
		wantErr bool
	}{
		{"8A", CamelotKey{Number: 8, Letter: 'A'}, false},
		{"12B", CamelotKey{Number: 12, Letter: 'B'}, false},
		{" 1b ", CamelotKey{Number: 1, Letter: 'B'}, false},
		{"", CamelotKey{}, true},
		{"13A", CamelotKey{}, true},
		{"0A", CamelotKey{}, true},
		{"8C", CamelotKey{}, true},
		{"Am", CamelotKey{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCamelotKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCamelotKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCamelotKey(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeyScore(t *testing.T) {
	t.Parallel()

	key := func(s string) CamelotKey {
		k, err := ParseCamelotKey(s)
		if err != nil {
			t.Fatalf("ParseCamelotKey(%q): %v", s, err)
		}
		return k
	}

	tests := []struct {
		a, b string
		want float64
	}{
		{"8A", "8A", 1.0},
		{"8A", "8B", 0.8},
		{"8A", "9A", 0.8},
		{"8A", "7A", 0.8},
		{"12A", "1A", 0.8},
		{"1B", "12B", 0.8},
		{"8A", "9B", 0.4},
		{"8A", "10A", 0.3},
		{"8A", "2A", 0.0},
		{"1A", "11A", 0.3},
	}

	for _, tt := range tests {
		got := KeyScore(key(tt.a), key(tt.b))
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("KeyScore(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if rev := KeyScore(key(tt.b), key(tt.a)); math.Abs(rev-got) > 1e-9 {
			t.Errorf("KeyScore not symmetric for %s/%s: %v vs %v", tt.a, tt.b, got, rev)
		}
	}
}

func TestCamelotKey_String(t *testing.T) {
	t.Parallel()

	if got := (CamelotKey{Number: 11, Letter: 'B'}).String(); got != "11B" {
		t.Errorf("String() = %q, want 11B", got)
	}
}
