package errors

import (
	"testing"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "bars", false},
		{"valid with dash", "left-axis", false},
		{"valid with dot", "group.a", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"separator", "a|b", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID("series", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSpec) {
				t.Errorf("ValidateID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidSpec)
			}
		})
	}
}

func TestValidateRotation(t *testing.T) {
	for _, deg := range []int{0, 90, 180, -90} {
		if err := ValidateRotation(deg); err != nil {
			t.Errorf("ValidateRotation(%d) = %v, want nil", deg, err)
		}
	}
	for _, deg := range []int{45, 270, -180, 360} {
		err := ValidateRotation(deg)
		if !Is(err, ErrCodeInvalidRotation) {
			t.Errorf("ValidateRotation(%d) = %v, want %s", deg, err, ErrCodeInvalidRotation)
		}
	}
}

func TestValidatePosition(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"top", false},
		{"bottom", false},
		{"left", false},
		{"right", false},
		{"", true},
		{"center", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidatePosition("a", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePosition(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
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
		{"relative", "testdata/bars.toml", false},
		{"absolute", "/tmp/bars.toml", false},
		{"empty", "", true},
		{"null byte", "bars\x00.toml", true},
		{"too long", string(make([]byte, 600)), true},
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
