package cli

import (
	"testing"

	"github.com/matzehuels/canvasballoon/pkg/errors"
)

func TestDeriveShades(t *testing.T) {
	tests := []struct {
		spec   string
		factor float64
		want   [3]string
	}{
		{"rgb(229,45,45)", 0.3, [3]string{"rgb(229,45,45)", "rgb(237,108,108)", "rgb(160,31,31)"}},
		{"#ffffff", 0.3, [3]string{"rgb(255,255,255)", "rgb(255,255,255)", "rgb(179,179,179)"}},
		{"rgb(10,20,30)", 0, [3]string{"rgb(10,20,30)", "rgb(10,20,30)", "rgb(10,20,30)"}},
		{"rgb(10,20,30)", 1, [3]string{"rgb(10,20,30)", "rgb(255,255,255)", "rgb(0,0,0)"}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			shades, err := deriveShades(tt.spec, tt.factor)
			if err != nil {
				t.Fatalf("deriveShades: %v", err)
			}
			for i, s := range shades {
				if got := s.color.String(); got != tt.want[i] {
					t.Errorf("%s = %s, want %s", s.name, got, tt.want[i])
				}
			}
		})
	}
}

func TestDeriveShadesErrors(t *testing.T) {
	tests := []struct {
		name   string
		spec   string
		factor float64
		code   errors.Code
	}{
		{"negative factor", "rgb(1,2,3)", -0.1, errors.ErrCodeInvalidInput},
		{"factor above one", "rgb(1,2,3)", 1.5, errors.ErrCodeInvalidInput},
		{"named color", "red", 0.3, errors.ErrCodeInvalidColorFormat},
		{"short rgb", "rgb(1,2)", 0.3, errors.ErrCodeInvalidColorFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deriveShades(tt.spec, tt.factor)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}
