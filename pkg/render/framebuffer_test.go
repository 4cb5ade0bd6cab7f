package render

import (
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/tumble/pkg/math3d"
)

// closeColor allows for coverage rounding in the anti-aliased fills.
func closeColor(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return max(x, y)-min(x, y) <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestFramebufferPixels(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Clear(ColorBlack)
	fb.SetPixel(1, 2, ColorRed)
	fb.SetPixel(-1, 0, ColorRed) // ignored
	fb.SetPixel(4, 0, ColorRed)  // ignored

	if got := fb.GetPixel(1, 2); got != ColorRed {
		t.Errorf("GetPixel(1, 2) = %v, want red", got)
	}
	if got := fb.GetPixel(0, 0); got != ColorBlack {
		t.Errorf("GetPixel(0, 0) = %v, want black", got)
	}
	if got := fb.GetPixel(9, 9); got != (color.RGBA{}) {
		t.Errorf("out of bounds = %v, want transparent", got)
	}
	if w, h := fb.Size(); w != 4 || h != 3 {
		t.Errorf("Size = %dx%d, want 4x3", w, h)
	}
}

func TestFramebufferFillTriangle(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	fb.Clear(ColorBlack)
	fb.FillTriangle(math3d.V2(0, 0), math3d.V2(20, 0), math3d.V2(0, 20), ColorGreen)

	if got := fb.GetPixel(2, 2); !closeColor(got, ColorGreen) {
		t.Errorf("inside pixel = %v, want green", got)
	}
	if got := fb.GetPixel(18, 18); got != ColorBlack {
		t.Errorf("outside pixel = %v, want black", got)
	}
}

func TestFramebufferGuardBand(t *testing.T) {
	tests := []struct {
		name string
		p    math3d.Vec2
	}{
		{"nan", math3d.V2(math.NaN(), 5)},
		{"inf", math3d.V2(5, math.Inf(1))},
		{"far away", math3d.V2(-1e9, 5)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(10, 10)
			fb.Clear(ColorBlack)
			fb.FillTriangle(math3d.V2(0, 0), math3d.V2(10, 0), tc.p, ColorWhite)
			fb.DrawLine(math3d.V2(0, 0), tc.p, ColorWhite)
			fb.DrawCircle(tc.p, 3, ColorWhite)

			for y := range 10 {
				for x := range 10 {
					if got := fb.GetPixel(x, y); got != ColorBlack {
						t.Fatalf("pixel (%d, %d) = %v, want untouched", x, y, got)
					}
				}
			}
		})
	}
}

func TestFramebufferDrawLine(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.DrawLine(math3d.V2(0, 3), math3d.V2(5, 3), ColorBlue)

	for x := 0; x <= 5; x++ {
		if got := fb.GetPixel(x, 3); got != ColorBlue {
			t.Errorf("pixel (%d, 3) = %v, want blue", x, got)
		}
	}
	if got := fb.GetPixel(6, 3); got == ColorBlue {
		t.Error("line overshot its end point")
	}
}

func TestFramebufferDrawCircle(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	fb.Clear(ColorBlack)
	fb.DrawCircle(math3d.V2(10, 10), 3, ColorRed)

	if got := fb.GetPixel(10, 10); !closeColor(got, ColorRed) {
		t.Errorf("center = %v, want red", got)
	}
	if got := fb.GetPixel(16, 10); got != ColorBlack {
		t.Errorf("outside = %v, want black", got)
	}
}

func TestFramebufferRedraw(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	if fb.TakeRedraw() {
		t.Fatal("new framebuffer should not need a redraw")
	}
	fb.RequestRedraw()
	if !fb.TakeRedraw() {
		t.Error("RequestRedraw was lost")
	}
	if fb.TakeRedraw() {
		t.Error("TakeRedraw should clear the flag")
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Resize(6, 4)
	if w, h := fb.Size(); w != 6 || h != 4 {
		t.Fatalf("Size = %dx%d, want 6x4", w, h)
	}
	fb.SetPixel(5, 3, ColorRed)
	if got := fb.GetPixel(5, 3); got != ColorRed {
		t.Errorf("pixel after resize = %v, want red", got)
	}
}

func TestFramebufferSavePNG(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Clear(ColorBlack)
	fb.SetPixel(2, 1, ColorGreen)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}
	if got := color.RGBAModel.Convert(img.At(2, 1)); got != ColorGreen {
		t.Errorf("pixel = %v, want green", got)
	}
}

func TestFramebufferSavePNGBadPath(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	if err := fb.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFramebufferDrawHalfBlocks(t *testing.T) {
	fb := NewFramebuffer(2, 4)
	fb.Clear(ColorBlack)
	fb.SetPixel(0, 0, ColorRed)
	fb.SetPixel(0, 1, ColorBlue)

	scr := uv.NewScreenBuffer(2, 2)
	fb.Draw(scr, scr.Bounds())

	cell := scr.CellAt(0, 0)
	if cell == nil || cell.Content != "▀" {
		t.Fatalf("cell = %+v, want upper half block", cell)
	}
	if cell.Style.Fg != color.Color(ColorRed) {
		t.Errorf("fg = %v, want red", cell.Style.Fg)
	}
	if cell.Style.Bg != color.Color(ColorBlue) {
		t.Errorf("bg = %v, want blue", cell.Style.Bg)
	}
	if w, h := TerminalSize(80, 24); w != 80 || h != 48 {
		t.Errorf("TerminalSize = %dx%d, want 80x48", w, h)
	}
}
