package chart

import (
	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/geometry"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// HouseSigns returns the sign in each house for the given reference. Index 0
// is House 1 and always holds the reference itself:
//
//	signs[i] = ((ordinal(reference) + i - 1) mod 12) + 1
//
// A missing or invalid reference fails with [errors.ErrCodeMissingReference].
// The resolver never substitutes a default; callers choose their own fallback.
func HouseSigns(reference zodiac.Sign) ([geometry.Houses]zodiac.Sign, error) {
	var signs [geometry.Houses]zodiac.Sign
	if !reference.Valid() {
		return signs, missingReference(reference)
	}
	for i := range signs {
		signs[i] = zodiac.SignAt(zodiac.Ordinal(reference) + i)
	}
	return signs, nil
}

// HouseOf returns the house (1..12) that sign occupies when reference anchors
// House 1. Both signs must be valid.
func HouseOf(reference, sign zodiac.Sign) int {
	return (zodiac.Ordinal(sign)-zodiac.Ordinal(reference)+zodiac.Count)%zodiac.Count + 1
}

func missingReference(reference zodiac.Sign) error {
	if reference == 0 {
		return errors.New(errors.ErrCodeMissingReference, "no reference sign supplied")
	}
	return errors.New(errors.ErrCodeMissingReference, "reference %s is not a zodiac sign", reference)
}
