package errors

import (
	"testing"
)

func TestValidatePageCount(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"one page", 1, false},
		{"four pages", 4, false},
		{"prime", 7, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePageCount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePageCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidArgument) {
				t.Errorf("ValidatePageCount(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidArgument)
			}
		})
	}
}

func TestValidateDPI(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"screen", 72, false},
		{"print", 300, false},
		{"max", MaxDPI, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"too large", MaxDPI + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDPI(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDPI(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMinSize(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"default", 32, false},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMinSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMinSize(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
