// Package geometry holds the fixed shape of the North Indian diamond chart and
// the occupancy patterns used to place several planets inside one house.
//
// # Coordinate System
//
// All public coordinates are percentages of the chart square: (0, 0) is the
// top-left corner and (100, 100) the bottom-right. House 1 is the top diamond
// and the houses run counter-clockwise from there:
//
//	 2 | 1 | 12        top edge:    2, 1, 12
//	 3 |   | 11        left edge:   3, 4, 5
//	 4 |   | 10        bottom edge: 6, 7, 8
//	 5 |   |  9        right edge:  9, 10, 11
//	 6 | 7 |  8
//
// Houses 1, 4, 7 and 10 are diamonds; the other eight are triangles.
//
// # Pattern Table
//
// Occupant positions are not hand-placed per house. Each shape class has one
// canonical frame with a pattern per occupant count, and every house owns an
// affine placement (origin plus a signed axis permutation) that projects the
// canonical anchors into the chart. Houses that mirror each other therefore
// produce exact reflections of each other's anchors.
//
// The table is validated when the package initializes: a missing count, an
// anchor outside its shape, overlapping anchors or an anchor crowding the sign
// label all panic at startup instead of surfacing as a rendering glitch.
package geometry
