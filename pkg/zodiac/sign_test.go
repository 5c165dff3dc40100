package zodiac

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/kundali/pkg/errors"
)

func TestOrdinalRoundTrip(t *testing.T) {
	for _, s := range Signs() {
		if got := SignAt(Ordinal(s)); got != s {
			t.Errorf("SignAt(Ordinal(%v)) = %v", s, got)
		}
	}
	if len(Signs()) != Count {
		t.Errorf("len(Signs()) = %d, want %d", len(Signs()), Count)
	}
}

func TestSignAtWraps(t *testing.T) {
	tests := []struct {
		ordinal int
		want    Sign
	}{
		{1, Aries},
		{12, Pisces},
		{13, Aries},
		{24, Pisces},
		{25, Aries},
		{0, Pisces},
		{-1, Aquarius},
		{-12, Pisces},
	}

	for _, tt := range tests {
		if got := SignAt(tt.ordinal); got != tt.want {
			t.Errorf("SignAt(%d) = %v, want %v", tt.ordinal, got, tt.want)
		}
	}
}

func TestAdd(t *testing.T) {
	if got := Capricorn.Add(3); got != Aries {
		t.Errorf("Capricorn.Add(3) = %v, want Aries", got)
	}
	if got := Aries.Add(-1); got != Pisces {
		t.Errorf("Aries.Add(-1) = %v, want Pisces", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Sign
	}{
		{"Aries", Aries},
		{"aries", Aries},
		{"  TAURUS ", Taurus},
		{"Cap", Capricorn},
		{"makara", Capricorn},
		{"Vrishchika", Scorpio},
		{"meen", Pisces},
		{"10", Capricorn},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "Ophiuchus", "13", "0", "Ar"} {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) expected error", input)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidSign) {
			t.Errorf("Parse(%q) code = %v, want %v", input, errors.GetCode(err), errors.ErrCodeInvalidSign)
		}
	}
}

func TestSignStrings(t *testing.T) {
	if Leo.String() != "Leo" || Leo.Short() != "Leo" || Leo.Sanskrit() != "Simha" {
		t.Errorf("Leo names = %q/%q/%q", Leo.String(), Leo.Short(), Leo.Sanskrit())
	}
	if Sign(0).Valid() || Sign(13).Valid() {
		t.Error("out-of-range signs should not be valid")
	}
	if Sign(0).String() != "Sign(0)" {
		t.Errorf("Sign(0).String() = %q", Sign(0).String())
	}
}

func TestSignJSON(t *testing.T) {
	type doc struct {
		Ascendant Sign `json:"ascendant"`
	}

	data, err := json.Marshal(doc{Ascendant: Sagittarius})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"ascendant":"Sagittarius"}` {
		t.Errorf("Marshal = %s", data)
	}

	var d doc
	if err := json.Unmarshal([]byte(`{"ascendant":"dhanu"}`), &d); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if d.Ascendant != Sagittarius {
		t.Errorf("Ascendant = %v, want Sagittarius", d.Ascendant)
	}

	d = doc{}
	if err := json.Unmarshal([]byte(`{"ascendant":""}`), &d); err != nil {
		t.Fatalf("Unmarshal empty error: %v", err)
	}
	if d.Ascendant != 0 {
		t.Errorf("empty ascendant = %v, want zero", d.Ascendant)
	}

	if err := json.Unmarshal([]byte(`{"ascendant":"Vulcan"}`), &d); err == nil {
		t.Error("expected error for unknown sign")
	}
}

func TestParseNakshatra(t *testing.T) {
	tests := []struct {
		input string
		want  Nakshatra
	}{
		{"Ashwini", 1},
		{"purva phalguni", 11},
		{"Purva-Phalguni", 11},
		{"moola", 19},
		{"Revati", 27},
	}
	for _, tt := range tests {
		got, err := ParseNakshatra(tt.input)
		if err != nil {
			t.Errorf("ParseNakshatra(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNakshatra(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseNakshatra("Abhijit"); err == nil {
		t.Error("Abhijit is not one of the 27 and should be rejected")
	}
	if len(Nakshatras()) != NakshatraCount {
		t.Errorf("len(Nakshatras()) = %d", len(Nakshatras()))
	}
}
