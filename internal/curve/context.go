// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package curve

import (
	"sort"
	"strings"
)

// Context describes the setting a playlist is built for. Every field is
// optional.
type Context struct {
	TimeOfDay string `json:"time_of_day,omitempty"`
	Activity  string `json:"activity,omitempty"`
	Energy    string `json:"energy,omitempty"`
	Mood      string `json:"mood,omitempty"`
	Season    string `json:"season,omitempty"`
}

// peakDrop mirrors a peak curve that falls back halfway to Min.
func peakDrop(lo, hi float64) float64 { return (hi - lo) * 0.5 }

var timeCurves = map[string]Curve{
	"morning":    {Name: "morning_warm_up", Shape: ShapeAscending, Min: 0.3, Max: 0.7, PeakAt: 0.8},
	"afternoon":  {Name: "afternoon_energy", Shape: ShapeFlat, Min: 0.6, Max: 0.8},
	"evening":    {Name: "evening_prime_time", Shape: ShapeBuildDrop, Min: 0.7, Max: 0.95, PeakAt: 0.6},
	"night":      {Name: "night_peak", Shape: ShapePeak, Min: 0.8, Max: 1.0, PeakAt: 0.5, Drop: peakDrop(0.8, 1.0)},
	"late_night": {Name: "late_night_wind_down", Shape: ShapeDescending, Min: 0.3, Max: 0.6},
}

var activityCurves = map[string]Curve{
	"party":          {Name: "party_energy", Shape: ShapeWave, Min: 0.7, Max: 0.95},
	"workout":        {Name: "workout_intensity", Shape: ShapeFlat, Min: 0.8, Max: 0.95},
	"chill":          {Name: "chill_vibes", Shape: ShapeFlat, Min: 0.3, Max: 0.6},
	"social_dancing": {Name: "social_dancing", Shape: ShapeWave, Min: 0.6, Max: 0.85},
	"focus":          {Name: "focus_flow", Shape: ShapeFlat, Min: 0.2, Max: 0.4},
}

var energyCurves = map[string]Curve{
	"warm_up":   {Name: "warm_up", Shape: ShapeAscending, Min: 0.3, Max: 0.7},
	"peak_time": {Name: "peak_time", Shape: ShapeFlat, Min: 0.8, Max: 0.95},
	"cool_down": {Name: "cool_down", Shape: ShapeDescending, Min: 0.3, Max: 0.7},
}

var moodCurves = map[string]Curve{
	"romantic":  {Name: "romantic_journey", Shape: ShapeWave, Min: 0.4, Max: 0.8},
	"energetic": {Name: "energy_blast", Shape: ShapeAscending, Min: 0.6, Max: 1.0},
}

var seasonCurves = map[string]Curve{
	"summer": {Name: "summer_vibes", Shape: ShapeWave, Min: 0.6, Max: 0.9},
	"winter": {Name: "winter_warmth", Shape: ShapeAscending, Min: 0.4, Max: 0.8},
}

func contextKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// Select picks the curve for ctx. Activity curves win over every other
// match; otherwise the first match in time, activity, energy, mood, season
// order is used. Default is returned when nothing matches.
func Select(ctx Context) Curve {
	if c, ok := activityCurves[contextKey(ctx.Activity)]; ok {
		return c
	}
	groups := []struct {
		value  string
		curves map[string]Curve
	}{
		{ctx.TimeOfDay, timeCurves},
		{ctx.Energy, energyCurves},
		{ctx.Mood, moodCurves},
		{ctx.Season, seasonCurves},
	}
	for _, g := range groups {
		if c, ok := g.curves[contextKey(g.value)]; ok {
			return c
		}
	}
	return Default()
}

// Lookup finds a curve by its name or context keyword, e.g. "party" or
// "party_energy". "default" returns Default.
func Lookup(name string) (Curve, bool) {
	key := contextKey(name)
	if key == "default" {
		return Default(), true
	}
	for _, group := range allGroups() {
		if c, ok := group[key]; ok {
			return c, true
		}
		for _, c := range group {
			if c.Name == key {
				return c, true
			}
		}
	}
	return Curve{}, false
}

// Names lists the context keywords Lookup accepts, sorted.
func Names() []string {
	var names []string
	for _, group := range allGroups() {
		for k := range group {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

func allGroups() []map[string]Curve {
	return []map[string]Curve{timeCurves, activityCurves, energyCurves, moodCurves, seasonCurves}
}
