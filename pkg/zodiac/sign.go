package zodiac

import (
	"strconv"
	"strings"

	"github.com/matzehuels/kundali/pkg/errors"
)

// Sign is one of the twelve sidereal zodiac signs (rashis).
//
// Valid signs carry their ordinal: Aries is 1 and Pisces is 12. The zero value
// means "no sign" and is what callers get when a reference is not supplied.
type Sign int

// The twelve signs in zodiac order.
const (
	Aries Sign = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// Count is the number of signs in the zodiac.
const Count = 12

type signInfo struct {
	name     string
	short    string
	sanskrit string
}

var signTable = [Count + 1]signInfo{
	{},
	{"Aries", "Ari", "Mesha"},
	{"Taurus", "Tau", "Vrishabha"},
	{"Gemini", "Gem", "Mithuna"},
	{"Cancer", "Can", "Karka"},
	{"Leo", "Leo", "Simha"},
	{"Virgo", "Vir", "Kanya"},
	{"Libra", "Lib", "Tula"},
	{"Scorpio", "Sco", "Vrishchika"},
	{"Sagittarius", "Sag", "Dhanu"},
	{"Capricorn", "Cap", "Makara"},
	{"Aquarius", "Aqu", "Kumbha"},
	{"Pisces", "Pis", "Meena"},
}

// signLookup maps every accepted spelling (lower-cased) to its sign.
var signLookup = buildSignLookup()

// extra spellings seen in Indian almanac exports.
var signAliases = map[string]Sign{
	"mesh":      Aries,
	"vrishabh":  Taurus,
	"vrisha":    Taurus,
	"mithun":    Gemini,
	"kark":      Cancer,
	"karkata":   Cancer,
	"simh":      Leo,
	"singh":     Leo,
	"kanyaa":    Virgo,
	"thula":     Libra,
	"vrishchik": Scorpio,
	"dhanus":    Sagittarius,
	"makar":     Capricorn,
	"kumbh":     Aquarius,
	"meen":      Pisces,
	"mina":      Pisces,
}

func buildSignLookup() map[string]Sign {
	m := make(map[string]Sign, Count*4+len(signAliases))
	for s := Aries; s <= Pisces; s++ {
		info := signTable[s]
		m[strings.ToLower(info.name)] = s
		m[strings.ToLower(info.short)] = s
		m[strings.ToLower(info.sanskrit)] = s
	}
	for k, v := range signAliases {
		m[k] = v
	}
	return m
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// String returns the English name of the sign, or "Sign(n)" for invalid values.
func (s Sign) String() string {
	if !s.Valid() {
		return "Sign(" + strconv.Itoa(int(s)) + ")"
	}
	return signTable[s].name
}

// Short returns the three-letter abbreviation ("Ari", "Tau", ...).
func (s Sign) Short() string {
	if !s.Valid() {
		return ""
	}
	return signTable[s].short
}

// Sanskrit returns the rashi name ("Mesha", "Vrishabha", ...).
func (s Sign) Sanskrit() string {
	if !s.Valid() {
		return ""
	}
	return signTable[s].sanskrit
}

// Ordinal returns the 1-based position of s in the zodiac.
// The result is only meaningful for valid signs.
func Ordinal(s Sign) int {
	return int(s)
}

// SignAt returns the sign at the given ordinal, wrapping cyclically so that
// 13 is Aries again and 0 is Pisces.
func SignAt(ordinal int) Sign {
	return Sign(((ordinal-1)%Count+Count)%Count + 1)
}

// Add returns the sign n steps after s (n may be negative).
func (s Sign) Add(n int) Sign {
	return SignAt(int(s) + n)
}

// Signs returns all twelve signs in zodiac order.
func Signs() []Sign {
	out := make([]Sign, Count)
	for i := range out {
		out[i] = Sign(i + 1)
	}
	return out
}

// Parse resolves a sign from its English name, Sanskrit name, three-letter
// abbreviation or ordinal ("1".."12"). Matching is case-insensitive and ignores
// surrounding whitespace.
//
// Unrecognized input fails with [errors.ErrCodeInvalidSign]; Parse never guesses.
func Parse(name string) (Sign, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if s, ok := signLookup[key]; ok {
		return s, nil
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= Count {
		return Sign(n), nil
	}
	return 0, errors.New(errors.ErrCodeInvalidSign, "unrecognized sign %q", name)
}

// MustParse is like Parse but panics on error. Intended for tests and tables.
func MustParse(name string) Sign {
	s, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return s
}

// MarshalText encodes the sign as its English name. The zero value encodes
// as an empty string.
func (s Sign) MarshalText() ([]byte, error) {
	if s == 0 {
		return []byte{}, nil
	}
	if !s.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidSign, "cannot encode %s", s)
	}
	return []byte(signTable[s].name), nil
}

// UnmarshalText decodes any spelling accepted by Parse. An empty value decodes
// to the zero sign so that "no reference supplied" survives a round trip.
func (s *Sign) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*s = 0
		return nil
	}
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
