package chart

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/matzehuels/kundali/pkg/geometry"
	"github.com/matzehuels/kundali/pkg/status"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// fingerprintNamespace scopes chart IDs so they never collide with other
// name-based UUIDs.
var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/kundali/chart"))

// Assemble resolves a complete chart layout.
//
// It rotates the houses around reference, maps every placement to its house,
// picks a sub-position for each occupant from the house's pattern and
// classifies each planet's visual state. Any invalid input fails the whole
// chart: the layout is never returned with planets silently dropped or moved.
//
// Assemble is pure. It performs no I/O, touches no shared mutable state and
// returns identical layouts for identical inputs, so it is safe to call
// concurrently and to memoize by (reference, placements).
func Assemble(reference zodiac.Sign, placements []Placement) (Layout, error) {
	signs, err := HouseSigns(reference)
	if err != nil {
		return Layout{}, err
	}
	if err := ValidatePlacements(placements); err != nil {
		return Layout{}, err
	}
	occ, err := MapHouses(reference, placements)
	if err != nil {
		return Layout{}, err
	}

	houses := make([]House, geometry.Houses)
	for i := range houses {
		number := i + 1
		occupants := occ.In(number)
		anchors, err := geometry.Anchors(number, len(occupants))
		if err != nil {
			return Layout{}, err
		}

		resolved := make([]Occupant, len(occupants))
		for j, p := range occupants {
			resolved[j] = Occupant{
				Placement: p,
				Anchor:    anchors[j],
				State:     status.Classify(p.Status, p.Exalted, p.Debilitated),
			}
		}

		houses[i] = House{
			Number:    number,
			Sign:      zodiac.Ordinal(signs[i]),
			SignName:  signs[i].String(),
			Shape:     geometry.Shape(number).String(),
			Label:     geometry.LabelAnchor(number),
			Occupants: resolved,
		}
	}

	return Layout{
		ID:        Fingerprint(reference, placements),
		Reference: reference,
		Houses:    houses,
	}, nil
}

// AssembleMode resolves the reference for mode and assembles the chart.
// The three chart modes share one code path; only the reference differs.
func AssembleMode(mode Mode, ascendant zodiac.Sign, placements []Placement) (Layout, error) {
	if mode == "" {
		mode = ModeAscendant
	}
	reference, err := ResolveReference(mode, ascendant, placements)
	if err != nil {
		return Layout{}, err
	}
	l, err := Assemble(reference, placements)
	if err != nil {
		return Layout{}, err
	}
	l.Mode = mode
	return l, nil
}

// Fingerprint returns a name-based UUID of the chart inputs. It only depends
// on the reference and the placements, in order.
func Fingerprint(reference zodiac.Sign, placements []Placement) string {
	data, _ := json.Marshal(struct {
		Reference  int         `json:"r"`
		Placements []Placement `json:"p"`
	}{zodiac.Ordinal(reference), placements})
	return uuid.NewSHA1(fingerprintNamespace, data).String()
}
