package chart

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/geometry"
	"github.com/matzehuels/kundali/pkg/status"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

func samplePlacements() []Placement {
	return []Placement{
		{Name: "Sun", Sign: "Taurus", Degree: 3, Minute: 12, Nakshatra: "Krittika", Pada: 2, Status: "[C]"},
		{Name: "Moon", Sign: "Scorpio", Degree: 17, Minute: 40, Nakshatra: "Jyeshtha", Pada: 1, Debilitated: true},
		{Name: "Mars", Sign: "Aries", Degree: 22, Minute: 5, Nakshatra: "Bharani", Pada: 3},
		{Name: "Mercury", Sign: "Taurus", Degree: 9, Minute: 58, Nakshatra: "Krittika", Pada: 4, Status: "[R C]"},
		{Name: "Jupiter", Sign: "Cancer", Degree: 5, Minute: 0, Nakshatra: "Pushya", Pada: 1, Exalted: true},
		{Name: "Venus", Sign: "Pisces", Degree: 27, Minute: 1, Nakshatra: "Revati", Pada: 4, Exalted: true},
		{Name: "Saturn", Sign: "Capricorn", Degree: 11, Minute: 33, Nakshatra: "Shravana", Pada: 1, Status: "[R]"},
		{Name: "Rahu", Sign: "Gemini", Degree: 14, Minute: 20, Nakshatra: "Ardra", Pada: 3, Status: "[R]"},
		{Name: "Ketu", Sign: "Sagittarius", Degree: 14, Minute: 20, Nakshatra: "Purva Ashadha", Pada: 1, Status: "[R]"},
	}
}

func TestAssemble(t *testing.T) {
	l, err := Assemble(zodiac.Capricorn, samplePlacements())
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}

	if len(l.Houses) != 12 {
		t.Fatalf("len(Houses) = %d, want 12", len(l.Houses))
	}
	if l.PlanetCount() != 9 {
		t.Errorf("PlanetCount() = %d, want 9", l.PlanetCount())
	}

	for i, h := range l.Houses {
		if h.Number != i+1 {
			t.Errorf("Houses[%d].Number = %d", i, h.Number)
		}
		anchors, _ := geometry.Anchors(h.Number, len(h.Occupants))
		for j, o := range h.Occupants {
			if o.Anchor != anchors[j] {
				t.Errorf("house %d occupant %d anchor = %v, want %v", h.Number, j, o.Anchor, anchors[j])
			}
		}
	}

	h1, _ := l.House(1)
	if h1.ZodiacSign() != zodiac.Capricorn || h1.SignName != "Capricorn" || h1.Shape != "diamond" {
		t.Errorf("house 1 = %+v", h1)
	}

	h4, _ := l.House(4)
	if len(h4.Occupants) != 1 || h4.Occupants[0].Placement.Name != "Mars" {
		t.Errorf("house 4 occupants = %+v, want Mars", h4.Occupants)
	}

	h5, _ := l.House(5)
	if len(h5.Occupants) != 2 {
		t.Fatalf("house 5 has %d occupants, want 2", len(h5.Occupants))
	}
	sun, mercury := h5.Occupants[0], h5.Occupants[1]
	if sun.Placement.Name != "Sun" || mercury.Placement.Name != "Mercury" {
		t.Errorf("house 5 order = %s, %s", sun.Placement.Name, mercury.Placement.Name)
	}
	if sun.Anchor == mercury.Anchor {
		t.Error("co-located planets share an anchor")
	}
	if sun.State.Base != status.Combust {
		t.Errorf("Sun state = %v, want combust", sun.State.Base)
	}
	if mercury.State.Base != status.RetrogradeAndCombust {
		t.Errorf("Mercury state = %v, want retrograde-combust", mercury.State.Base)
	}
	for _, o := range h5.Occupants {
		if !geometry.Contains(5, o.Anchor) {
			t.Errorf("%s anchor %v outside house 5", o.Placement.Name, o.Anchor)
		}
	}

	h11, _ := l.House(11)
	if len(h11.Occupants) != 1 || !h11.Occupants[0].State.Debilitated {
		t.Errorf("house 11 = %+v, want debilitated Moon", h11.Occupants)
	}
}

func TestAssembleIdempotent(t *testing.T) {
	a, err := Assemble(zodiac.Leo, samplePlacements())
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	b, err := Assemble(zodiac.Leo, samplePlacements())
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Assemble not deterministic (-first +second):\n%s", diff)
	}

	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if string(ja) != string(jb) {
		t.Error("serialized layouts differ for identical input")
	}
}

func TestAssembleConcurrent(t *testing.T) {
	want, err := Assemble(zodiac.Virgo, samplePlacements())
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]Layout, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Assemble(zodiac.Virgo, samplePlacements())
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("result %d differs:\n%s", i, diff)
		}
	}
}

func TestAssembleErrors(t *testing.T) {
	crowded := make([]Placement, 10)
	for i := range crowded {
		crowded[i] = Placement{Name: fmt.Sprintf("P%d", i), Sign: "Leo"}
	}

	tests := []struct {
		name       string
		reference  zodiac.Sign
		placements []Placement
		code       errors.Code
	}{
		{"missing reference", 0, samplePlacements(), errors.ErrCodeMissingReference},
		{"unknown sign", zodiac.Aries, []Placement{{Name: "Sun", Sign: "Ophiuchus"}}, errors.ErrCodeInvalidSign},
		{"too many in one house", zodiac.Aries, crowded, errors.ErrCodeUnsupportedOccupancy},
		{"degree out of range", zodiac.Aries, []Placement{{Name: "Sun", Sign: "Leo", Degree: 30}}, errors.ErrCodeInvalidPlacement},
		{"duplicate planet", zodiac.Aries, []Placement{{Name: "Sun", Sign: "Leo"}, {Name: "Sun", Sign: "Virgo"}}, errors.ErrCodeInvalidPlacement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.reference, tt.placements)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestAssembleNineInOneHouse(t *testing.T) {
	full := make([]Placement, geometry.MaxOccupants)
	for i := range full {
		full[i] = Placement{Name: fmt.Sprintf("P%d", i), Sign: "Leo"}
	}
	l, err := Assemble(zodiac.Leo, full)
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	h1, _ := l.House(1)
	if len(h1.Occupants) != geometry.MaxOccupants {
		t.Errorf("house 1 has %d occupants, want %d", len(h1.Occupants), geometry.MaxOccupants)
	}
}

func TestAssembleMode(t *testing.T) {
	placements := samplePlacements()

	tests := []struct {
		mode Mode
		want zodiac.Sign
	}{
		{ModeAscendant, zodiac.Capricorn},
		{"", zodiac.Capricorn},
		{ModeMoon, zodiac.Scorpio},
		{ModeSun, zodiac.Taurus},
	}

	for _, tt := range tests {
		l, err := AssembleMode(tt.mode, zodiac.Capricorn, placements)
		if err != nil {
			t.Fatalf("AssembleMode(%q) error: %v", tt.mode, err)
		}
		if l.Reference != tt.want {
			t.Errorf("AssembleMode(%q).Reference = %v, want %v", tt.mode, l.Reference, tt.want)
		}
		h1, _ := l.House(1)
		if h1.ZodiacSign() != tt.want {
			t.Errorf("AssembleMode(%q) house 1 = %v, want %v", tt.mode, h1.SignName, tt.want)
		}
		if l.Mode == "" {
			t.Errorf("AssembleMode(%q) left Mode empty", tt.mode)
		}
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint(zodiac.Aries, samplePlacements())
	if a != Fingerprint(zodiac.Aries, samplePlacements()) {
		t.Error("Fingerprint is not deterministic")
	}
	if a == Fingerprint(zodiac.Taurus, samplePlacements()) {
		t.Error("Fingerprint ignores the reference")
	}
	reordered := samplePlacements()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	if a == Fingerprint(zodiac.Aries, reordered) {
		t.Error("Fingerprint ignores placement order")
	}
}
