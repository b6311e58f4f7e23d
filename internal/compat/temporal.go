// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package compat

import "strings"

// neutralTransition is the score of a pair missing from a transition table.
const neutralTransition = 0.5

var eraAliases = map[string]string{
	"70s":          "1970s",
	"1970s":        "1970s",
	"seventies":    "1970s",
	"80s":          "1980s",
	"1980s":        "1980s",
	"eighties":     "1980s",
	"90s":          "1990s",
	"1990s":        "1990s",
	"nineties":     "1990s",
	"2000s":        "2000s",
	"2010s":        "2010s",
	"2020s":        "2020s",
	"classic":      "Classic",
	"vintage":      "Vintage",
	"golden":       "Golden Age",
	"modern":       "Modern",
	"contemporary": "Contemporary",
}

var eraTransitions = map[string]map[string]float64{
	"1970s":        {"1980s": 0.9, "1990s": 0.6, "Classic": 0.8, "Vintage": 0.9},
	"1980s":        {"1970s": 0.9, "1990s": 0.9, "2000s": 0.7, "Classic": 0.8, "Golden Age": 0.9},
	"1990s":        {"1980s": 0.9, "2000s": 0.9, "2010s": 0.7, "Golden Age": 0.8},
	"2000s":        {"1990s": 0.9, "2010s": 0.9, "Modern": 0.8},
	"2010s":        {"2000s": 0.9, "2020s": 0.9, "Modern": 0.9, "Contemporary": 0.8},
	"2020s":        {"2010s": 0.9, "Contemporary": 0.9, "Modern": 0.8},
	"Classic":      {"1970s": 0.8, "1980s": 0.8, "Vintage": 0.9, "Golden Age": 0.9},
	"Vintage":      {"1970s": 0.9, "Classic": 0.9},
	"Golden Age":   {"1980s": 0.9, "1990s": 0.8, "Classic": 0.9},
	"Modern":       {"2010s": 0.9, "2020s": 0.8, "Contemporary": 0.9},
	"Contemporary": {"2020s": 0.9, "Modern": 0.9},
}

var languageAliases = map[string]string{
	"spanish":      "Spanish",
	"english":      "English",
	"portuguese":   "Portuguese",
	"instrumental": "Instrumental",
	"french":       "French",
	"italian":      "Italian",
}

var languageTransitions = map[string]map[string]float64{
	"Spanish":    {"Portuguese": 0.8, "Instrumental": 0.9, "English": 0.4, "French": 0.5, "Italian": 0.6},
	"English":    {"Instrumental": 0.9, "Spanish": 0.4, "Portuguese": 0.3, "French": 0.5},
	"Portuguese": {"Spanish": 0.8, "Instrumental": 0.9, "English": 0.3},
	"Instrumental": {
		"Spanish": 0.9, "English": 0.9, "Portuguese": 0.9, "French": 0.9, "Italian": 0.9,
	},
	"French":  {"Instrumental": 0.9, "Italian": 0.7, "Spanish": 0.5, "English": 0.5},
	"Italian": {"Instrumental": 0.9, "French": 0.7, "Spanish": 0.6},
}

// CanonicalEra maps era spellings such as "80s" or "eighties" to a canonical
// name. Unknown eras are returned trimmed.
func CanonicalEra(era string) string {
	return canonical(era, eraAliases)
}

// CanonicalLanguage maps a language label to its canonical name.
func CanonicalLanguage(lang string) string {
	return canonical(lang, languageAliases)
}

func canonical(v string, aliases map[string]string) string {
	v = strings.TrimSpace(v)
	if c, ok := aliases[strings.ToLower(v)]; ok {
		return c
	}
	return v
}

func transition(from, to string, t map[string]map[string]float64) float64 {
	if from == to {
		return 1.0
	}
	if s, ok := t[from][to]; ok {
		return s
	}
	return neutralTransition
}

// EraTransition scores how well era a flows into era b.
func EraTransition(a, b string) float64 {
	return transition(CanonicalEra(a), CanonicalEra(b), eraTransitions)
}

// LanguageTransition scores how well language a flows into language b.
func LanguageTransition(a, b string) float64 {
	return transition(CanonicalLanguage(a), CanonicalLanguage(b), languageTransitions)
}

// Temporal averages the era and language transition scores.
type Temporal struct{}

// Name implements Subscorer.
func (Temporal) Name() string { return NameTemporal }

// Score implements Subscorer.
func (Temporal) Score(a, b *Side) (float64, bool) {
	var sum float64
	var n int
	if a.Meta.Era != "" && b.Meta.Era != "" {
		sum += transition(a.era, b.era, eraTransitions)
		n++
	}
	if a.Meta.Language != "" && b.Meta.Language != "" {
		sum += transition(a.language, b.language, languageTransitions)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
