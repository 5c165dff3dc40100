// Package status classifies how a planet is drawn from its raw status tokens
// and dignity flags.
//
// A planet has exactly one base state and any combination of overlays:
//
//	base:     Direct | Retrograde | Combust | RetrogradeAndCombust
//	overlays: Exalted, Debilitated
//
// Retrograde and combust together form their own base state with its own
// styling; renderers must not layer the two single-state styles on top of
// each other. Animation of retrograde planets belongs to the rendering surface
// and is not modelled here.
package status

import (
	"strings"
	"unicode"
)

// Base is the mutually exclusive part of a planet's visual state.
type Base int

const (
	Direct Base = iota
	Retrograde
	Combust
	RetrogradeAndCombust
)

var baseNames = [...]string{
	Direct:               "direct",
	Retrograde:           "retrograde",
	Combust:              "combust",
	RetrogradeAndCombust: "retrograde-combust",
}

// String returns the stable identifier of the base state. It doubles as the
// CSS class used by the SVG renderer.
func (b Base) String() string {
	if b < Direct || b > RetrogradeAndCombust {
		return "unknown"
	}
	return baseNames[b]
}

// MarshalText encodes the base state by name.
func (b Base) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes a base state name; unknown names decode to Direct.
func (b *Base) UnmarshalText(text []byte) error {
	*b = Direct
	for i, n := range baseNames {
		if n == string(text) {
			*b = Base(i)
		}
	}
	return nil
}

// Visual is the complete visual state of one planet.
type Visual struct {
	Base        Base `json:"base" bson:"base"`
	Exalted     bool `json:"exalted,omitempty" bson:"exalted,omitempty"`
	Debilitated bool `json:"debilitated,omitempty" bson:"debilitated,omitempty"`
}

// Class returns the CSS class for the base state.
func (v Visual) Class() string {
	return v.Base.String()
}

// Marks returns the overlay glyphs appended after a planet label: an up arrow
// for exalted and a down arrow for debilitated.
func (v Visual) Marks() string {
	var b strings.Builder
	if v.Exalted {
		b.WriteString("↑")
	}
	if v.Debilitated {
		b.WriteString("↓")
	}
	return b.String()
}

// IsRetrograde reports whether the planet moves retrograde, alone or combined.
func (v Visual) IsRetrograde() bool {
	return v.Base == Retrograde || v.Base == RetrogradeAndCombust
}

// IsCombust reports whether the planet is combust, alone or combined.
func (v Visual) IsCombust() bool {
	return v.Base == Combust || v.Base == RetrogradeAndCombust
}

// Classify derives the visual state from a raw token string such as "[R]",
// "[R C]" or "R,C" plus the dignity flags.
//
// Tokens are case-insensitive and may be separated by spaces, commas, slashes
// or pipes, optionally wrapped in brackets. "R", "Rx", "retro" and "retrograde"
// mark retrograde motion; "C", "Cb" and "combust" mark combustion. Anything
// else is ignored, so an empty or unrecognized string yields Direct.
func Classify(tokens string, exalted, debilitated bool) Visual {
	retro, combust := parseTokens(tokens)

	base := Direct
	switch {
	case retro && combust:
		base = RetrogradeAndCombust
	case retro:
		base = Retrograde
	case combust:
		base = Combust
	}

	return Visual{Base: base, Exalted: exalted, Debilitated: debilitated}
}

func parseTokens(s string) (retro, combust bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '[', ']', '(', ')', ',', '/', '|', ';':
			return true
		}
		return unicode.IsSpace(r)
	})
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "r", "rx", "retro", "retrograde", "vakri":
			retro = true
		case "c", "cb", "combust", "asta":
			combust = true
		}
	}
	return retro, combust
}
