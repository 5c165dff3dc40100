// Package chart assembles a Vedic birth chart (kundali) in the North Indian
// diamond style from a reference sign and a list of planetary placements.
//
// # Pipeline
//
// [Assemble] composes four small steps:
//
//  1. [HouseSigns] rotates the zodiac so the reference sign sits in House 1.
//  2. [MapHouses] places each planet in the house of its sign, counted from
//     the reference.
//  3. [geometry.Anchors] gives each occupant of a house its own sub-position.
//  4. [status.Classify] decides how each planet is styled.
//
// The result is a [Layout]: twelve houses, each with its sign and annotated
// occupants, independent of any particular renderer.
//
// # Chart Modes
//
// Ascendant, Moon and Sun charts differ only in the reference sign. Resolve
// it once with [ResolveReference] (or call [AssembleMode]) rather than keeping
// three rotation paths.
//
// # Errors
//
// Invalid input is reported, never repaired: a missing reference yields
// MISSING_REFERENCE, an unknown planet sign INVALID_SIGN, out-of-range degrees
// or padas INVALID_PLACEMENT, and more than nine planets in one house
// UNSUPPORTED_OCCUPANCY. Use [errors.Is] from pkg/errors to branch on codes.
//
// # Example
//
//	placements := []chart.Placement{
//	    {Name: "Mars", Sign: "Aries", Degree: 12, Status: "[R]"},
//	}
//	l, err := chart.Assemble(zodiac.Capricorn, placements)
//	// l.Houses[3] is House 4 (Aries) and holds Mars.
package chart
