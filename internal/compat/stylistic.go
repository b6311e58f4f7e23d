// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package compat

// Level is a named point on the curated style compatibility scale.
type Level float64

// Compatibility levels used by the curated style tables.
const (
	Perfect      Level = 1.0
	Excellent    Level = 0.9
	Good         Level = 0.7
	Fair         Level = 0.5
	Poor         Level = 0.3
	Incompatible Level = 0.1
)

// Weights of each style dimension inside the stylistic sub-score.
const (
	styleSubgenreWeight  = 0.25
	styleMoodWeight      = 0.20
	styleActivityWeight  = 0.10
	styleTimeOfDayWeight = 0.10
)

// table maps a label to the levels of the labels it flows into. Lookups are
// tried in both directions.
type table map[string]map[string]Level

func (t table) lookup(a, b string) float64 {
	if a == b {
		return float64(Perfect)
	}
	if row, ok := t[a]; ok {
		if l, ok := row[b]; ok {
			return float64(l)
		}
	}
	if row, ok := t[b]; ok {
		if l, ok := row[a]; ok {
			return float64(l)
		}
	}
	return float64(Fair)
}

var subgenreTable = table{
	"salsa romantica": {
		"romantic salsa": Perfect,
		"salsa dura":     Good,
		"tropical salsa": Good,
		"classic salsa":  Excellent,
		"latin ballad":   Fair,
		"bachata":        Fair,
	},
	"salsa dura": {
		"salsa romantica": Good,
		"tropical salsa":  Excellent,
		"classic salsa":   Excellent,
		"afro-cuban jazz": Good,
		"merengue":        Fair,
	},
	"tropical salsa": {
		"salsa dura":      Excellent,
		"salsa romantica": Good,
		"merengue":        Good,
		"cumbia":          Fair,
	},
	"classic salsa": {
		"salsa dura":      Excellent,
		"salsa romantica": Excellent,
		"afro-cuban jazz": Good,
		"son cubano":      Good,
	},
	"bachata": {
		"salsa romantica": Fair,
		"latin ballad":    Good,
		"reggaeton":       Fair,
	},
	"merengue": {
		"tropical salsa": Good,
		"cumbia":         Good,
		"reggaeton":      Fair,
	},
	"afro-cuban jazz": {
		"classic salsa": Good,
		"salsa dura":    Good,
		"latin jazz":    Excellent,
		"smooth jazz":   Fair,
	},
}

var moodTable = table{
	"energetic": {
		"uplifting":   Excellent,
		"happy":       Excellent,
		"passionate":  Good,
		"festive":     Excellent,
		"romantic":    Fair,
		"melancholic": Poor,
		"chill":       Poor,
	},
	"passionate": {
		"romantic":  Excellent,
		"energetic": Good,
		"sensual":   Excellent,
		"emotional": Good,
		"uplifting": Fair,
		"chill":     Fair,
	},
	"romantic": {
		"passionate": Excellent,
		"sensual":    Excellent,
		"emotional":  Good,
		"nostalgic":  Good,
		"energetic":  Fair,
		"uplifting":  Fair,
	},
	"uplifting": {
		"happy":       Excellent,
		"energetic":   Excellent,
		"festive":     Excellent,
		"positive":    Excellent,
		"passionate":  Fair,
		"melancholic": Poor,
	},
	"chill": {
		"relaxed":   Excellent,
		"smooth":    Excellent,
		"romantic":  Fair,
		"nostalgic": Good,
		"energetic": Poor,
	},
}

var activityTable = table{
	"party": {
		"dance":          Excellent,
		"celebration":    Excellent,
		"social dancing": Excellent,
		"club":           Good,
		"workout":        Fair,
		"chill":          Poor,
	},
	"workout": {
		"fitness": Excellent,
		"energy":  Excellent,
		"party":   Fair,
		"dance":   Fair,
		"chill":   Poor,
	},
	"chill": {
		"relax":      Excellent,
		"background": Excellent,
		"lounge":     Excellent,
		"focus":      Good,
		"party":      Poor,
		"workout":    Poor,
	},
	"social dancing": {
		"dance":       Excellent,
		"party":       Excellent,
		"celebration": Good,
		"club":        Good,
	},
}

var timeOfDayTable = table{
	"morning": {
		"afternoon": Good,
		"evening":   Fair,
		"night":     Poor,
	},
	"afternoon": {
		"morning": Good,
		"evening": Excellent,
		"night":   Fair,
	},
	"evening": {
		"afternoon": Excellent,
		"night":     Excellent,
		"morning":   Fair,
	},
	"night": {
		"evening":    Excellent,
		"late night": Excellent,
		"afternoon":  Fair,
		"morning":    Poor,
	},
}

// Stylistic compares subgenre, mood, activity and time-of-day labels using
// exact matches and the curated tables.
type Stylistic struct{}

// Name implements Subscorer.
func (Stylistic) Name() string { return NameStylistic }

// Score implements Subscorer.
func (Stylistic) Score(a, b *Side) (float64, bool) {
	var sum, weights float64
	add := func(x, y string, t table, w float64) {
		if x == "" || y == "" {
			return
		}
		sum += t.lookup(x, y) * w
		weights += w
	}

	add(a.subgenre(), b.subgenre(), subgenreTable, styleSubgenreWeight)
	add(a.Meta.Mood, b.Meta.Mood, moodTable, styleMoodWeight)
	add(a.Meta.Activity, b.Meta.Activity, activityTable, styleActivityWeight)
	add(a.Meta.TimeOfDay, b.Meta.TimeOfDay, timeOfDayTable, styleTimeOfDayWeight)

	if weights == 0 {
		return 0, false
	}
	return sum / weights, true
}

// subgenre falls back to the track's own genre tag.
func (s *Side) subgenre() string {
	if s.Meta.Subgenre != "" {
		return s.Meta.Subgenre
	}
	return s.genre
}
