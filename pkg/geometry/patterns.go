package geometry

import (
	"fmt"
	"math"
)

// MaxOccupants is the largest number of planets a single house can hold.
// Nine covers the seven grahas plus Rahu and Ketu all sharing one sign.
const MaxOccupants = 9

const (
	// edgeMargin keeps anchors away from the house outline, in canonical units.
	edgeMargin = 0.05
	// minSeparation keeps two anchors from overlapping.
	minSeparation = 0.2
	// labelClearance keeps anchors away from the sign number.
	labelClearance = 0.15
)

type patternKey struct {
	shape ShapeClass
	count int
}

// patternSource lists, per shape, the anchors for 1..MaxOccupants occupants.
// Index i holds the pattern for i+1 occupants. Rows are filled from the outer
// edge of the house inwards, left to right, so the first planets in input order
// take the roomiest slots.
var patternSource = map[ShapeClass][MaxOccupants][]local{
	ShapeDiamond: {
		{{0, -0.15}},
		{{-0.3, -0.15}, {0.3, -0.15}},
		{{-0.35, -0.2}, {0.35, -0.2}, {0, 0.25}},
		{{0, -0.5}, {-0.4, -0.1}, {0.4, -0.1}, {0, 0.3}},
		{{-0.25, -0.45}, {0.25, -0.45}, {-0.45, -0.05}, {0.45, -0.05}, {0, 0.3}},
		{{-0.25, -0.45}, {0.25, -0.45}, {-0.5, -0.05}, {0, -0.05}, {0.5, -0.05}, {0, 0.35}},
		{{-0.25, -0.45}, {0.25, -0.45}, {-0.5, -0.05}, {0, -0.05}, {0.5, -0.05}, {-0.2, 0.35}, {0.2, 0.35}},
		{{0, -0.65}, {-0.3, -0.4}, {0.3, -0.4}, {-0.55, -0.05}, {0, -0.05}, {0.55, -0.05}, {-0.2, 0.35}, {0.2, 0.35}},
		{{0, -0.68}, {-0.3, -0.42}, {0.3, -0.42}, {-0.6, -0.1}, {-0.2, -0.1}, {0.2, -0.1}, {0.6, -0.1}, {-0.2, 0.3}, {0.2, 0.3}},
	},
	ShapeTriangle: {
		{{0, 0.35}},
		{{-0.35, 0.3}, {0.35, 0.3}},
		{{-0.45, 0.2}, {0.45, 0.2}, {0, 0.5}},
		{{-0.5, 0.18}, {0, 0.18}, {0.5, 0.18}, {0, 0.5}},
		{{-0.5, 0.15}, {0, 0.15}, {0.5, 0.15}, {-0.22, 0.42}, {0.22, 0.42}},
		{{-0.55, 0.12}, {0, 0.12}, {0.55, 0.12}, {-0.25, 0.38}, {0.25, 0.38}, {0, 0.62}},
		{{-0.6, 0.1}, {-0.2, 0.1}, {0.2, 0.1}, {0.6, 0.1}, {-0.25, 0.36}, {0.25, 0.36}, {0, 0.6}},
		{{-0.6, 0.1}, {-0.2, 0.1}, {0.2, 0.1}, {0.6, 0.1}, {-0.35, 0.33}, {0, 0.33}, {0.35, 0.33}, {0, 0.58}},
		{{-0.66, 0.08}, {-0.22, 0.08}, {0.22, 0.08}, {0.66, 0.08}, {-0.4, 0.3}, {0, 0.3}, {0.4, 0.3}, {-0.15, 0.52}, {0.15, 0.52}},
	},
}

// patterns is the validated lookup table. It is read-only after init and
// shared by every caller.
var patterns = mustBuildPatterns(patternSource)

func mustBuildPatterns(src map[ShapeClass][MaxOccupants][]local) map[patternKey][]local {
	table, err := buildPatterns(src)
	if err != nil {
		panic(fmt.Sprintf("geometry: invalid occupancy pattern table: %v", err))
	}
	return table
}

func buildPatterns(src map[ShapeClass][MaxOccupants][]local) (map[patternKey][]local, error) {
	table := make(map[patternKey][]local, 2*MaxOccupants)
	for _, shape := range []ShapeClass{ShapeDiamond, ShapeTriangle} {
		rows, ok := src[shape]
		if !ok {
			return nil, fmt.Errorf("no patterns for %s houses", shape)
		}
		for i, anchors := range rows {
			count := i + 1
			if err := validatePattern(shape, count, anchors); err != nil {
				return nil, err
			}
			table[patternKey{shape, count}] = anchors
		}
	}
	return table, nil
}

func validatePattern(shape ShapeClass, count int, anchors []local) error {
	if len(anchors) != count {
		return fmt.Errorf("%s/%d: has %d anchors", shape, count, len(anchors))
	}
	for i, a := range anchors {
		if !insideShape(shape, a, edgeMargin) {
			return fmt.Errorf("%s/%d: anchor %d (%.2f, %.2f) outside shape", shape, count, i, a.u, a.v)
		}
		if dist(a, labelLocal) < labelClearance {
			return fmt.Errorf("%s/%d: anchor %d crowds the sign label", shape, count, i)
		}
		for j := i + 1; j < len(anchors); j++ {
			if dist(a, anchors[j]) < minSeparation {
				return fmt.Errorf("%s/%d: anchors %d and %d overlap", shape, count, i, j)
			}
		}
	}
	return nil
}

func dist(a, b local) float64 {
	return math.Hypot(a.u-b.u, a.v-b.v)
}
