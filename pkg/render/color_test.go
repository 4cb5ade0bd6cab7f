package render

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ffffff", ColorWhite, false},
		{"#ff8000", RGB(255, 128, 0), false},
		{"#000", RGB(0, 0, 0), false},
		{"orange", Color{}, true},
		{"", Color{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestShadeColor(t *testing.T) {
	tests := []struct {
		name      string
		base      Color
		intensity float64
		want      Color
	}{
		{"full", ColorWhite, 1, ColorWhite},
		{"half", ColorWhite, 0.5, RGB(128, 128, 128)},
		{"dark", ColorWhite, 0, ColorBlack},
		{"negative clamps", ColorWhite, -0.7, ColorBlack},
		{"overbright clamps", RGB(200, 100, 0), 3, RGB(255, 255, 0)},
		{"tinted", RGB(200, 100, 0), 0.5, RGB(100, 50, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShadeColor(tc.base, tc.intensity); got != tc.want {
				t.Errorf("ShadeColor(%v, %v) = %v, want %v", tc.base, tc.intensity, got, tc.want)
			}
		})
	}
}

func TestTint(t *testing.T) {
	if got := Tint(RGB(200, 100, 50), ColorWhite); got != RGB(200, 100, 50) {
		t.Errorf("white tint = %v, want unchanged", got)
	}
	if got := Tint(ColorWhite, RGB(0, 255, 0)); got != ColorGreen {
		t.Errorf("green tint = %v, want green", got)
	}
	if got := Tint(RGB(200, 100, 50), RGB(255, 255, 0)); got != RGB(200, 100, 0) {
		t.Errorf("yellow tint = %v, want (200, 100, 0)", got)
	}
	if got := Tint(Color{}, ColorWhite); got != ColorBlack {
		t.Errorf("transparent tint = %v, want black", got)
	}
}
