package chart

import (
	"github.com/matzehuels/kundali/pkg/geometry"
	"github.com/matzehuels/kundali/pkg/status"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Placement is one planet as supplied by the surrounding application.
//
// Sign is kept as text because it comes straight from upstream data; it is
// resolved (and rejected if unknown) when the chart is assembled. Status holds
// the raw token string ("[R]", "[R C]", ...).
type Placement struct {
	Name        string `json:"name" yaml:"name" toml:"name" bson:"name"`
	Sign        string `json:"sign" yaml:"sign" toml:"sign" bson:"sign"`
	Degree      int    `json:"degree" yaml:"degree" toml:"degree" bson:"degree"`
	Minute      int    `json:"minute" yaml:"minute" toml:"minute" bson:"minute"`
	Nakshatra   string `json:"nakshatra,omitempty" yaml:"nakshatra,omitempty" toml:"nakshatra,omitempty" bson:"nakshatra,omitempty"`
	Pada        int    `json:"pada,omitempty" yaml:"pada,omitempty" toml:"pada,omitempty" bson:"pada,omitempty"`
	Status      string `json:"status,omitempty" yaml:"status,omitempty" toml:"status,omitempty" bson:"status,omitempty"`
	Exalted     bool   `json:"exalted,omitempty" yaml:"exalted,omitempty" toml:"exalted,omitempty" bson:"exalted,omitempty"`
	Debilitated bool   `json:"debilitated,omitempty" yaml:"debilitated,omitempty" toml:"debilitated,omitempty" bson:"debilitated,omitempty"`
}

// Occupancy lists the placements in each house, in input order.
// Index 0 is House 1.
type Occupancy [geometry.Houses][]Placement

// In returns the placements in house (1..12).
func (o Occupancy) In(house int) []Placement {
	if !geometry.ValidHouse(house) {
		return nil
	}
	return o[house-1]
}

// Len returns the number of mapped placements across all houses.
func (o Occupancy) Len() int {
	n := 0
	for _, ps := range o {
		n += len(ps)
	}
	return n
}

// Layout is the resolved, renderer-agnostic chart.
type Layout struct {
	// ID is a deterministic fingerprint of the inputs; identical inputs share it.
	ID        string      `json:"id" bson:"_id"`
	Reference zodiac.Sign `json:"reference" bson:"reference"`
	Mode      Mode        `json:"mode,omitempty" bson:"mode,omitempty"`
	Houses    []House     `json:"houses" bson:"houses"`
}

// House is one of the twelve fixed slots with its rotated sign and occupants.
type House struct {
	Number    int            `json:"house" bson:"house"`
	Sign      int            `json:"sign" bson:"sign"`
	SignName  string         `json:"sign_name" bson:"sign_name"`
	Shape     string         `json:"shape" bson:"shape"`
	Label     geometry.Point `json:"label" bson:"label"`
	Occupants []Occupant     `json:"occupants" bson:"occupants"`
}

// ZodiacSign returns the sign occupying the house.
func (h House) ZodiacSign() zodiac.Sign {
	return zodiac.Sign(h.Sign)
}

// Occupant is a placement annotated with where and how to draw it.
type Occupant struct {
	Placement Placement      `json:"placement" bson:"placement"`
	Anchor    geometry.Point `json:"anchor" bson:"anchor"`
	State     status.Visual  `json:"state" bson:"state"`
}

// House returns the layout's entry for house number n, or false if absent.
func (l Layout) House(n int) (House, bool) {
	for _, h := range l.Houses {
		if h.Number == n {
			return h, true
		}
	}
	return House{}, false
}

// PlanetCount returns the number of placed planets.
func (l Layout) PlanetCount() int {
	n := 0
	for _, h := range l.Houses {
		n += len(h.Occupants)
	}
	return n
}
