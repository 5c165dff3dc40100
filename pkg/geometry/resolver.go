package geometry

import (
	"github.com/matzehuels/kundali/pkg/errors"
)

// Anchors returns count positions inside house, index-aligned with the
// occupants in their input order.
//
// A count of zero yields an empty slice. Counts above [MaxOccupants] fail with
// [errors.ErrCodeUnsupportedOccupancy]: planets are never stacked on top of
// each other or silently dropped.
func Anchors(house, count int) ([]Point, error) {
	p, err := lookupHouse(house)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "negative occupant count %d", count)
	}
	if count == 0 {
		return []Point{}, nil
	}
	if count > MaxOccupants {
		return nil, errors.New(errors.ErrCodeUnsupportedOccupancy,
			"house %d has %d occupants (max %d)", house, count, MaxOccupants)
	}

	pattern, ok := patterns[patternKey{p.shape, count}]
	if !ok {
		// Unreachable once init validation passed.
		return nil, errors.New(errors.ErrCodeInternal, "no %s pattern for %d occupants", p.shape, count)
	}

	out := make([]Point, len(pattern))
	for i, l := range pattern {
		out[i] = p.project(l)
	}
	return out, nil
}
