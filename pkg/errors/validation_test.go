package errors

import (
	"strings"
	"testing"
)

func TestValidatePlanetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"full name", "Jupiter", false},
		{"abbreviation", "Ju", false},
		{"with space", "Rahu North", false},
		{"devanagari", "गुरु", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("x", 65), true},
		{"control char", "Ma\x01rs", true},
		{"newline", "Mars\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlanetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePlanetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPlacement) {
				t.Errorf("ValidatePlanetName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPlacement)
			}
		})
	}
}

func TestValidateProfileID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"uuid", "6f1c7a64-1d1c-4e4e-9a55-2f3f2a1b0c9d", false},
		{"slug", "ravi_1984", false},

		{"empty", "", true},
		{"path traversal", "../etc", true},
		{"slash", "a/b", true},
		{"leading dash", "-abc", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfileID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfileID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "charts/ravi.yaml", false},
		{"absolute", "/tmp/chart.json", false},

		{"empty", "", true},
		{"null byte", "chart\x00.json", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
