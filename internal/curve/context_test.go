// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package curve

import "testing"

func TestSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{"nothing matches", Context{}, "default"},
		{"unknown values", Context{TimeOfDay: "brunch", Mood: "angry"}, "default"},
		{"time only", Context{TimeOfDay: "Morning"}, "morning_warm_up"},
		{"activity preferred over time", Context{TimeOfDay: "night", Activity: "party"}, "party_energy"},
		{"activity with space", Context{Activity: "social dancing"}, "social_dancing"},
		{"time before mood", Context{TimeOfDay: "late_night", Mood: "romantic"}, "late_night_wind_down"},
		{"energy before season", Context{Energy: "cool_down", Season: "summer"}, "cool_down"},
		{"mood", Context{Mood: "energetic"}, "energy_blast"},
		{"season", Context{Season: "winter"}, "winter_warmth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Select(tt.ctx).Name; got != tt.want {
				t.Errorf("Select(%+v) = %q, want %q", tt.ctx, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	if c, ok := Lookup("party"); !ok || c.Shape != ShapeWave {
		t.Errorf("Lookup(party) = %+v, %v", c, ok)
	}
	if c, ok := Lookup("energy_blast"); !ok || c.Min != 0.6 {
		t.Errorf("Lookup(energy_blast) = %+v, %v", c, ok)
	}
	if c, ok := Lookup("DEFAULT"); !ok || c != Default() {
		t.Errorf("Lookup(DEFAULT) = %+v, %v", c, ok)
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) should fail")
	}
}

func TestCurvesStayInRange(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		c, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		for _, v := range c.Progression(11) {
			if v < c.Min-1e-12 || v > c.Max+1e-12 {
				t.Errorf("%s: target %v outside [%v,%v]", name, v, c.Min, c.Max)
			}
		}
	}
}
