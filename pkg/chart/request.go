package chart

import (
	"strings"

	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Request is a complete chart description as read from a file or an API body.
//
// Ascendant is text for the same reason [Placement.Sign] is. It may be empty
// when Mode is moon or sun.
type Request struct {
	Name       string      `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" bson:"name,omitempty"`
	Ascendant  string      `json:"ascendant" yaml:"ascendant" toml:"ascendant" bson:"ascendant"`
	Mode       Mode        `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty" bson:"mode,omitempty"`
	Placements []Placement `json:"placements" yaml:"placements" toml:"placements" bson:"placements"`
}

// AscendantSign parses the ascendant. An empty ascendant returns 0 and no
// error; whether that is acceptable depends on the mode.
func (r Request) AscendantSign() (zodiac.Sign, error) {
	if strings.TrimSpace(r.Ascendant) == "" {
		return 0, nil
	}
	return zodiac.Parse(r.Ascendant)
}

// Layout assembles the request in its own mode.
func (r Request) Layout() (Layout, error) {
	return r.LayoutFor(r.Mode)
}

// LayoutFor assembles the request with mode overriding the request's mode.
// An empty mode falls back to the request's, then to ascendant.
func (r Request) LayoutFor(mode Mode) (Layout, error) {
	if mode == "" {
		mode = r.Mode
	}
	m, err := ParseMode(string(mode))
	if err != nil {
		return Layout{}, err
	}
	asc, err := r.AscendantSign()
	if err != nil {
		return Layout{}, err
	}
	return AssembleMode(m, asc, r.Placements)
}
