package chart

import (
	stderrors "errors"

	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// MapHouses assigns each placement to a house relative to reference:
//
//	house = ((ordinal(sign) - ordinal(reference) + 12) mod 12) + 1
//
// Placements keep their input order inside a house; that order later decides
// which anchor each planet receives.
//
// A placement whose sign cannot be parsed is left out of the occupancy and
// reported with [errors.ErrCodeInvalidSign]. All such failures are joined into
// the returned error while the valid placements are still mapped, so callers
// can show what went wrong without the bad planet landing in House 1.
func MapHouses(reference zodiac.Sign, placements []Placement) (Occupancy, error) {
	var occ Occupancy
	if !reference.Valid() {
		return occ, missingReference(reference)
	}

	var errs []error
	for _, p := range placements {
		sign, err := zodiac.Parse(p.Sign)
		if err != nil {
			errs = append(errs, errors.Wrap(errors.ErrCodeInvalidSign, err, "planet %s", p.Name))
			continue
		}
		h := HouseOf(reference, sign)
		occ[h-1] = append(occ[h-1], p)
	}
	return occ, stderrors.Join(errs...)
}
