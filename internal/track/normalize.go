// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package track

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// absentLabel is the placeholder enrichment tools write for unknown values.
const absentLabel = "-"

// NormalizePercent converts a percentage-like value to a [0,1] fraction.
//
// Strings with a trailing "%" are divided by 100. Any other number greater
// than 1 is treated as a 0-100 percentage. Missing, non-numeric, non-finite
// and "-" inputs report false. Results are clamped to [0,1], which makes the
// function idempotent.
func NormalizePercent(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case Percent:
		if !x.Valid {
			return 0, false
		}
		return fromNumber(x.Value)
	case *Percent:
		if x == nil {
			return 0, false
		}
		return NormalizePercent(*x)
	case string:
		return fromString(x)
	case json.Number:
		return fromString(string(x))
	case float64:
		return fromNumber(x)
	case float32:
		return fromNumber(float64(x))
	case int:
		return fromNumber(float64(x))
	case int8:
		return fromNumber(float64(x))
	case int16:
		return fromNumber(float64(x))
	case int32:
		return fromNumber(float64(x))
	case int64:
		return fromNumber(float64(x))
	case uint:
		return fromNumber(float64(x))
	case uint8:
		return fromNumber(float64(x))
	case uint16:
		return fromNumber(float64(x))
	case uint32:
		return fromNumber(float64(x))
	case uint64:
		return fromNumber(float64(x))
	default:
		return 0, false
	}
}

func fromString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == absentLabel {
		return 0, false
	}
	if trimmed, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
		if err != nil || !finite(f) {
			return 0, false
		}
		return clamp01(f / 100), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return fromNumber(f)
}

func fromNumber(f float64) (float64, bool) {
	if !finite(f) {
		return 0, false
	}
	if f > 1.0 {
		f /= 100
	}
	return clamp01(f), true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// NormalizeLabel trims and lower-cases a categorical label. The "-"
// placeholder normalizes to the empty (absent) label.
func NormalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == absentLabel {
		return ""
	}
	return s
}
