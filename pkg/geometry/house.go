package geometry

import (
	"math"

	"github.com/matzehuels/kundali/pkg/errors"
)

// Houses is the number of houses in a chart.
const Houses = 12

// Size is the width and height of the chart square in percent.
const Size = 100.0

// scale converts canonical units to percent. A canonical diamond has a
// half-diagonal of one unit and a canonical triangle a half-base of one unit;
// both are a quarter of the chart.
const scale = Size / 4

// Point is a position inside the chart square, in percent.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// ShapeClass identifies the geometric family of a house.
type ShapeClass int

const (
	ShapeUnknown ShapeClass = iota
	// ShapeDiamond is a kendra house (1, 4, 7, 10): a square rotated 45°.
	ShapeDiamond
	// ShapeTriangle is one of the eight triangular houses between the kendras.
	ShapeTriangle
)

func (s ShapeClass) String() string {
	switch s {
	case ShapeDiamond:
		return "diamond"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// local is a position in a shape's canonical frame. For diamonds the region is
// |u|+|v| < 1 centred on the origin. For triangles the base runs from u=-1 to
// u=1 along v=0 and the apex sits at (0, 1). In both shapes +v points towards
// the centre of the chart.
type local struct {
	u, v float64
}

// placement maps a canonical frame onto a house:
//
//	x = ox + scale*(a*u + b*v)
//	y = oy + scale*(c*u + d*v)
//
// The matrix [a b; c d] is always a signed permutation, so it is its own
// transpose-inverse and reflections between houses stay exact.
type placement struct {
	shape      ShapeClass
	ox, oy     float64
	a, b, c, d float64
}

// housePlacements is indexed by house number; index 0 is unused.
var housePlacements = [Houses + 1]placement{
	{},
	1:  {ShapeDiamond, 50, 25, 1, 0, 0, 1},
	2:  {ShapeTriangle, 25, 0, 1, 0, 0, 1},
	3:  {ShapeTriangle, 0, 25, 0, 1, 1, 0},
	4:  {ShapeDiamond, 25, 50, 0, 1, 1, 0},
	5:  {ShapeTriangle, 0, 75, 0, 1, -1, 0},
	6:  {ShapeTriangle, 25, 100, 1, 0, 0, -1},
	7:  {ShapeDiamond, 50, 75, 1, 0, 0, -1},
	8:  {ShapeTriangle, 75, 100, -1, 0, 0, -1},
	9:  {ShapeTriangle, 100, 75, 0, -1, -1, 0},
	10: {ShapeDiamond, 75, 50, 0, -1, 1, 0},
	11: {ShapeTriangle, 100, 25, 0, -1, 1, 0},
	12: {ShapeTriangle, 75, 0, -1, 0, 0, 1},
}

var (
	diamondOutline  = []local{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	triangleOutline = []local{{-1, 0}, {1, 0}, {0, 1}}

	// labelLocal is where the sign number sits: close to the inner vertex.
	labelLocal = local{0, 0.78}
)

func (p placement) project(l local) Point {
	return Point{
		X: round2(p.ox + scale*(p.a*l.u+p.b*l.v)),
		Y: round2(p.oy + scale*(p.c*l.u+p.d*l.v)),
	}
}

func (p placement) unproject(pt Point) local {
	dx, dy := (pt.X-p.ox)/scale, (pt.Y-p.oy)/scale
	return local{u: p.a*dx + p.c*dy, v: p.b*dx + p.d*dy}
}

// round2 strips float noise; canonical values have two decimals so every
// projected coordinate is exact at two decimals too.
func round2(x float64) float64 {
	r := math.Round(x*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

// ValidHouse reports whether house is in 1..12.
func ValidHouse(house int) bool {
	return house >= 1 && house <= Houses
}

func lookupHouse(house int) (placement, error) {
	if !ValidHouse(house) {
		return placement{}, errors.New(errors.ErrCodeInvalidInput, "house %d out of range 1..%d", house, Houses)
	}
	return housePlacements[house], nil
}

// Shape returns the shape class of house, or ShapeUnknown when out of range.
func Shape(house int) ShapeClass {
	if !ValidHouse(house) {
		return ShapeUnknown
	}
	return housePlacements[house].shape
}

// Polygon returns the outline of house in percent, in drawing order.
func Polygon(house int) []Point {
	p, err := lookupHouse(house)
	if err != nil {
		return nil
	}
	outline := triangleOutline
	if p.shape == ShapeDiamond {
		outline = diamondOutline
	}
	pts := make([]Point, len(outline))
	for i, l := range outline {
		pts[i] = p.project(l)
	}
	return pts
}

// Centroid returns the geometric centre of house.
func Centroid(house int) Point {
	pts := Polygon(house)
	if len(pts) == 0 {
		return Point{}
	}
	var c Point
	for _, pt := range pts {
		c.X += pt.X
		c.Y += pt.Y
	}
	n := float64(len(pts))
	return Point{X: round2(c.X / n), Y: round2(c.Y / n)}
}

// LabelAnchor returns where the sign number of house is drawn.
func LabelAnchor(house int) Point {
	p, err := lookupHouse(house)
	if err != nil {
		return Point{}
	}
	return p.project(labelLocal)
}

// Contains reports whether pt lies strictly inside house.
func Contains(house int, pt Point) bool {
	p, err := lookupHouse(house)
	if err != nil {
		return false
	}
	return insideShape(p.shape, p.unproject(pt), 0)
}

// insideShape reports whether l lies inside the canonical shape, keeping at
// least margin canonical units from every edge.
func insideShape(shape ShapeClass, l local, margin float64) bool {
	switch shape {
	case ShapeDiamond:
		return math.Abs(l.u)+math.Abs(l.v) < 1-margin
	case ShapeTriangle:
		return l.v > margin && math.Abs(l.u) < 1-l.v-margin
	default:
		return false
	}
}

// Segment is a straight line of the chart frame.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Frame returns the line segments that draw the chart: the outer square, both
// diagonals and the inner diamond joining the edge midpoints.
func Frame() []Segment {
	tl, tr := Point{0, 0}, Point{Size, 0}
	bl, br := Point{0, Size}, Point{Size, Size}
	top, right := Point{Size / 2, 0}, Point{Size, Size / 2}
	bottom, left := Point{Size / 2, Size}, Point{0, Size / 2}
	return []Segment{
		{tl, tr}, {tr, br}, {br, bl}, {bl, tl},
		{tl, br}, {tr, bl},
		{top, right}, {right, bottom}, {bottom, left}, {left, top},
	}
}
