package gslice

import "testing"

func TestSanitize(t *testing.T) {
	for _, test := range []struct {
		name       string
		perimeters int
		infill     int
		thickness  float64
		want       Options
	}{
		{"all valid", 3, 35, 0.3, Options{3, 35, 0.3}},
		{"defaults pass through", 2, 20, 0.2, Options{2, 20, 0.2}},
		{"zero perimeters", 0, 20, 0.2, Options{2, 20, 0.2}},
		{"negative infill", 2, -5, 0.2, Options{2, 20, 0.2}},
		{"zero infill kept", 2, 0, 0.2, Options{2, 0, 0.2}},
		{"infill clamped", 2, 150, 0.2, Options{2, 100, 0.2}},
		{"bad thickness", 2, 20, -1, Options{2, 20, 0.2}},
	} {
		if got := Sanitize(test.perimeters, test.infill, test.thickness); got != test.want {
			t.Errorf("%s: Sanitize = %+v, want %+v", test.name, got, test.want)
		}
	}
}
