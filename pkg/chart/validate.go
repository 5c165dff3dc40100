package chart

import (
	stderrors "errors"

	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// ValidatePlacement checks the numeric ranges and names of a placement.
// The sign itself is checked by [MapHouses].
//
// Pada 0 means "unknown"; an empty nakshatra is accepted for the same reason.
func ValidatePlacement(p Placement) error {
	if err := errors.ValidatePlanetName(p.Name); err != nil {
		return err
	}
	if p.Degree < 0 || p.Degree > 29 {
		return errors.New(errors.ErrCodeInvalidPlacement, "planet %s: degree %d out of range 0..29", p.Name, p.Degree)
	}
	if p.Minute < 0 || p.Minute > 59 {
		return errors.New(errors.ErrCodeInvalidPlacement, "planet %s: minute %d out of range 0..59", p.Name, p.Minute)
	}
	if p.Pada < 0 || p.Pada > 4 {
		return errors.New(errors.ErrCodeInvalidPlacement, "planet %s: pada %d out of range 1..4", p.Name, p.Pada)
	}
	if p.Nakshatra != "" {
		if _, err := zodiac.ParseNakshatra(p.Nakshatra); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPlacement, err, "planet %s", p.Name)
		}
	}
	return nil
}

// ValidatePlacements validates every placement and joins the failures.
// Duplicate planet names are rejected because renderers key labels by name.
func ValidatePlacements(placements []Placement) error {
	var errs []error
	seen := make(map[string]bool, len(placements))
	for _, p := range placements {
		if err := ValidatePlacement(p); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[p.Name] {
			errs = append(errs, errors.New(errors.ErrCodeInvalidPlacement, "planet %s listed twice", p.Name))
		}
		seen[p.Name] = true
	}
	return stderrors.Join(errs...)
}
