package chart

import (
	"strings"

	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Mode selects which sign anchors House 1.
type Mode string

const (
	// ModeAscendant anchors the chart on the rising sign (lagna chart).
	ModeAscendant Mode = "ascendant"
	// ModeMoon anchors the chart on the Moon's sign (chandra chart).
	ModeMoon Mode = "moon"
	// ModeSun anchors the chart on the Sun's sign (surya chart).
	ModeSun Mode = "sun"
)

// Modes lists all chart modes in display order.
var Modes = []Mode{ModeAscendant, ModeMoon, ModeSun}

// ParseMode resolves a mode name. The empty string means ModeAscendant.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ascendant", "asc", "lagna":
		return ModeAscendant, nil
	case "moon", "chandra":
		return ModeMoon, nil
	case "sun", "surya":
		return ModeSun, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidMode, "unknown chart mode %q (must be ascendant, moon or sun)", s)
	}
}

var luminaryNames = map[Mode][]string{
	ModeMoon: {"moon", "mo", "chandra"},
	ModeSun:  {"sun", "su", "surya"},
}

// ResolveReference picks the reference sign for mode. The ascendant is used
// as-is for ModeAscendant; for the Moon and Sun charts the luminary is looked
// up among placements by name.
//
// An absent ascendant or luminary fails with [errors.ErrCodeMissingReference];
// a luminary with an unparseable sign fails with [errors.ErrCodeInvalidSign].
func ResolveReference(mode Mode, ascendant zodiac.Sign, placements []Placement) (zodiac.Sign, error) {
	switch mode {
	case ModeAscendant, "":
		if !ascendant.Valid() {
			return 0, missingReference(ascendant)
		}
		return ascendant, nil
	case ModeMoon, ModeSun:
		names := luminaryNames[mode]
		for _, p := range placements {
			if !matchesName(p.Name, names) {
				continue
			}
			sign, err := zodiac.Parse(p.Sign)
			if err != nil {
				return 0, errors.Wrap(errors.ErrCodeInvalidSign, err, "%s chart reference", mode)
			}
			return sign, nil
		}
		return 0, errors.New(errors.ErrCodeMissingReference, "no %s placement to anchor the %s chart", mode, mode)
	default:
		return 0, errors.New(errors.ErrCodeInvalidMode, "unknown chart mode %q", mode)
	}
}

func matchesName(name string, candidates []string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, c := range candidates {
		if n == c {
			return true
		}
	}
	return false
}
