package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/kundali/pkg/chart"
)

var planetAbbrev = map[string]string{
	"sun":       "Su",
	"moon":      "Mo",
	"mars":      "Ma",
	"mercury":   "Me",
	"jupiter":   "Ju",
	"venus":     "Ve",
	"saturn":    "Sa",
	"rahu":      "Ra",
	"ketu":      "Ke",
	"uranus":    "Ur",
	"neptune":   "Ne",
	"pluto":     "Pl",
	"ascendant": "As",
	"lagna":     "As",
}

// Abbrev returns the two-letter label of a planet. Unknown names keep their
// first two letters.
func Abbrev(name string) string {
	name = strings.TrimSpace(name)
	if a, ok := planetAbbrev[strings.ToLower(name)]; ok {
		return a
	}
	if utf8.RuneCountInString(name) <= 2 {
		return name
	}
	r := []rune(name)
	return string(r[:2])
}

// Label returns the text drawn for an occupant: the abbreviation, optionally
// the degree, and the dignity marks.
func Label(o chart.Occupant, degrees bool) string {
	s := Abbrev(o.Placement.Name)
	if degrees {
		s += fmt.Sprintf(" %d°", o.Placement.Degree)
	}
	return s + o.State.Marks()
}
