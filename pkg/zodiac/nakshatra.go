package zodiac

import (
	"strings"

	"github.com/matzehuels/kundali/pkg/errors"
)

// Nakshatra is one of the 27 lunar mansions, numbered 1 (Ashwini) to 27 (Revati).
type Nakshatra int

// NakshatraCount is the number of lunar mansions.
const NakshatraCount = 27

var nakshatraNames = [NakshatraCount + 1]string{
	"",
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

var nakshatraAliases = map[string]Nakshatra{
	"aswini":         1,
	"asvini":         1,
	"kritika":        3,
	"mrigasira":      5,
	"mrigashirsha":   5,
	"arudra":         6,
	"pushyami":       8,
	"aslesha":        9,
	"ashlesa":        9,
	"purvaphalguni":  11,
	"pubba":          11,
	"uttaraphalguni": 12,
	"chittra":        14,
	"svati":          15,
	"visakha":        16,
	"jyeshta":        18,
	"moola":          19,
	"purvashadha":    20,
	"uttarashadha":   21,
	"sravana":        22,
	"dhanishtha":     23,
	"satabhisha":     24,
	"shatabhishak":   24,
	"purvabhadra":    25,
	"uttarabhadra":   26,
}

var nakshatraLookup = buildNakshatraLookup()

func normalizeNakshatra(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

func buildNakshatraLookup() map[string]Nakshatra {
	m := make(map[string]Nakshatra, NakshatraCount+len(nakshatraAliases))
	for i := 1; i <= NakshatraCount; i++ {
		m[normalizeNakshatra(nakshatraNames[i])] = Nakshatra(i)
	}
	for k, v := range nakshatraAliases {
		m[k] = v
	}
	return m
}

// Valid reports whether n is one of the 27 nakshatras.
func (n Nakshatra) Valid() bool {
	return n >= 1 && n <= NakshatraCount
}

func (n Nakshatra) String() string {
	if !n.Valid() {
		return ""
	}
	return nakshatraNames[n]
}

// Nakshatras returns all lunar mansions in order.
func Nakshatras() []Nakshatra {
	out := make([]Nakshatra, NakshatraCount)
	for i := range out {
		out[i] = Nakshatra(i + 1)
	}
	return out
}

// ParseNakshatra resolves a nakshatra name. Spaces, hyphens and case are
// ignored, and common transliterations are accepted.
func ParseNakshatra(name string) (Nakshatra, error) {
	if n, ok := nakshatraLookup[normalizeNakshatra(name)]; ok {
		return n, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidPlacement, "unrecognized nakshatra %q", name)
}
