package errors

import "testing"

func TestValidateSurfaceID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "canvas", false},
		{"with dash", "main-canvas", false},
		{"with digits", "canvas2", false},
		{"with dot", "page.canvas", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"space", "my canvas", true},
		{"quote", `canvas"`, true},
		{"angle bracket", "<canvas>", true},
		{"non-ascii", "lienzoé", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSurfaceID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSurfaceID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeSurfaceUnavailable) {
				t.Errorf("ValidateSurfaceID(%q) returned wrong error code: %v", tt.input, err)
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
		{"valid simple", "balloons.svg", false},
		{"valid nested", "out/renders/balloons.png", false},
		{"valid absolute", "/tmp/balloons.svg", false},
		{"valid dots in name", "v1.2/balloons..svg", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "out/../secret", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}
