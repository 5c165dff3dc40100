package chart

import (
	"testing"

	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

func TestMapHouses(t *testing.T) {
	placements := []Placement{
		{Name: "Sun", Sign: "Taurus"},
		{Name: "Mars", Sign: "Aries"},
		{Name: "Venus", Sign: "taurus"},
		{Name: "Saturn", Sign: "Capricorn"},
	}

	occ, err := MapHouses(zodiac.Capricorn, placements)
	if err != nil {
		t.Fatalf("MapHouses error: %v", err)
	}

	if got := occ.In(1); len(got) != 1 || got[0].Name != "Saturn" {
		t.Errorf("house 1 = %v, want [Saturn]", got)
	}
	if got := occ.In(4); len(got) != 1 || got[0].Name != "Mars" {
		t.Errorf("house 4 = %v, want [Mars]", got)
	}
	house5 := occ.In(5)
	if len(house5) != 2 || house5[0].Name != "Sun" || house5[1].Name != "Venus" {
		t.Errorf("house 5 = %v, want [Sun Venus] in input order", house5)
	}
	if occ.Len() != len(placements) {
		t.Errorf("Len() = %d, want %d", occ.Len(), len(placements))
	}
}

func TestMapHousesFormula(t *testing.T) {
	var placements []Placement
	for _, s := range zodiac.Signs() {
		placements = append(placements, Placement{Name: s.String(), Sign: s.String()})
	}

	for _, ref := range zodiac.Signs() {
		occ, err := MapHouses(ref, placements)
		if err != nil {
			t.Fatalf("MapHouses(%v) error: %v", ref, err)
		}
		for h := 1; h <= 12; h++ {
			for _, p := range occ.In(h) {
				sign := zodiac.MustParse(p.Sign)
				want := (zodiac.Ordinal(sign)-zodiac.Ordinal(ref)+12)%12 + 1
				if h != want {
					t.Errorf("ref %v: %s in house %d, want %d", ref, p.Name, h, want)
				}
			}
		}
		if occ.Len() != 12 {
			t.Errorf("ref %v: mapped %d placements, want 12", ref, occ.Len())
		}
	}
}

func TestMapHousesInvalidSign(t *testing.T) {
	placements := []Placement{
		{Name: "Moon", Sign: "Cancer"},
		{Name: "Rahu", Sign: "Nibiru"},
		{Name: "Ketu", Sign: ""},
	}

	occ, err := MapHouses(zodiac.Aries, placements)
	if err == nil {
		t.Fatal("expected error for unknown signs")
	}
	if !errors.Is(err, errors.ErrCodeInvalidSign) {
		t.Errorf("code = %v, want INVALID_SIGN", errors.GetCode(err))
	}
	if occ.Len() != 1 {
		t.Errorf("Len() = %d, want only the valid placement", occ.Len())
	}
	if len(occ.In(1)) != 0 {
		t.Error("invalid placements must not be coerced into house 1")
	}
	if got := occ.In(4); len(got) != 1 || got[0].Name != "Moon" {
		t.Errorf("house 4 = %v, want [Moon]", got)
	}
}

func TestMapHousesMissingReference(t *testing.T) {
	_, err := MapHouses(0, []Placement{{Name: "Sun", Sign: "Leo"}})
	if !errors.Is(err, errors.ErrCodeMissingReference) {
		t.Errorf("error = %v, want MISSING_REFERENCE", err)
	}
}
