// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

// Package curve describes target energy progressions across a playlist.
//
// A curve maps a relative position in [0,1] to a target danceability in
// [0,1]. The optimizer penalizes tracks whose danceability strays from the
// curve at their position.
package curve

import (
	"fmt"
	"math"
	"strings"
)

// Shape is the family of a curve.
type Shape string

// Supported shapes.
const (
	ShapePeak       Shape = "peak"
	ShapeFlat       Shape = "flat"
	ShapeAscending  Shape = "ascending"
	ShapeDescending Shape = "descending"
	ShapeValley     Shape = "valley"
	ShapeWave       Shape = "wave"
	ShapeBuildDrop  Shape = "build_drop"
)

const (
	valleyAt = 0.4
	buildAt  = 0.7
	dropSpan = 0.1
)

// ParseShape parses a shape name.
func ParseShape(s string) (Shape, error) {
	switch sh := Shape(strings.ToLower(strings.TrimSpace(s))); sh {
	case ShapePeak, ShapeFlat, ShapeAscending, ShapeDescending, ShapeValley, ShapeWave, ShapeBuildDrop:
		return sh, nil
	default:
		return "", fmt.Errorf("unknown curve shape %q", s)
	}
}

// Curve is an energy progression. Min and Max bound the target; PeakAt is
// the relative position of the climax for peak curves, and Drop is how far a
// peak curve falls from Max by the end.
type Curve struct {
	Name   string  `json:"name"`
	Shape  Shape   `json:"shape" validate:"required,curve_shape"`
	Min    float64 `json:"min" validate:"gte=0,lte=1"`
	Max    float64 `json:"max" validate:"gte=0,lte=1,gtefield=Min"`
	PeakAt float64 `json:"peak_at,omitempty" validate:"gte=0,lte=1"`
	Drop   float64 `json:"drop,omitempty" validate:"gte=0,lte=1"`
}

// Default is the reference progression: a rise from 0.3 to a 0.9 peak 70%
// through the playlist, then a 0.4 fall.
func Default() Curve {
	return Curve{Name: "default", Shape: ShapePeak, Min: 0.3, Max: 0.9, PeakAt: 0.7, Drop: 0.4}
}

// Target returns the target danceability at ratio, clamped to [Min,Max].
func (c Curve) Target(ratio float64) float64 {
	ratio = max(0, min(1, ratio))
	span := c.Max - c.Min

	var v float64
	switch c.Shape {
	case ShapeFlat:
		v = (c.Min + c.Max) / 2
	case ShapeAscending:
		v = c.Min + span*ratio
	case ShapeDescending:
		v = c.Max - span*ratio
	case ShapeValley:
		if ratio <= valleyAt {
			v = c.Max - span*(ratio/valleyAt)*0.6
		} else {
			v = c.Min + span*((ratio-valleyAt)/(1-valleyAt))
		}
	case ShapeWave:
		v = c.Min + span*(math.Sin(ratio*math.Pi*2.5)*0.3+0.5)
	case ShapeBuildDrop:
		switch {
		case ratio <= buildAt:
			v = c.Min + span*(ratio/buildAt)
		case ratio <= buildAt+dropSpan:
			v = c.Max * 0.6
		default:
			v = c.Max * 0.7
		}
	default:
		v = c.peak(ratio)
	}
	return max(c.Min, min(c.Max, v))
}

func (c Curve) peak(ratio float64) float64 {
	peakAt := c.PeakAt
	if peakAt <= 0 || peakAt >= 1 {
		peakAt = 0.7
	}
	if ratio <= peakAt {
		return c.Min + (c.Max-c.Min)*(ratio/peakAt)
	}
	return c.Max - ((ratio-peakAt)/(1-peakAt))*c.Drop
}

// Progression returns the targets for n evenly spaced positions, using the
// same ratio as the optimizer: position / max(1, n-1).
func (c Curve) Progression(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	denom := float64(max(1, n-1))
	for i := range out {
		out[i] = c.Target(float64(i) / denom)
	}
	return out
}
