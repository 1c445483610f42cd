package ui2d

import "testing"

func near32(a, b float32) bool {
	d := a - b
	return d < 1e-5 && d > -1e-5
}

func TestRGB(t *testing.T) {
	c := RGB(255, 0, 51)
	if c.R != 1 || c.G != 0 || !near32(c.B, 0.2) || c.A != 1 {
		t.Errorf("RGB(255, 0, 51) = %+v", c)
	}
}

func TestDarkenBrighten(t *testing.T) {
	base := RGB(150, 150, 150)

	hover := base.Darken(0.2)
	if !near32(hover.R, 120.0/255) {
		t.Errorf("Darken(0.2).R = %v, want %v", hover.R, 120.0/255)
	}

	flash := base.Brighten(0.2)
	if !near32(flash.G, 180.0/255) {
		t.Errorf("Brighten(0.2).G = %v, want %v", flash.G, 180.0/255)
	}

	if got := ColorWhite.Brighten(0.5); got != ColorWhite {
		t.Errorf("Brighten should saturate at 1, got %+v", got)
	}
	if got := base.WithAlpha(0.5); got.A != 0.5 || got.R != base.R {
		t.Errorf("WithAlpha(0.5) = %+v", got)
	}
}
