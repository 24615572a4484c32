package ui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"pocketcalc/calc"
	"pocketcalc/hal"

	"tinygo.org/x/tinyfont/freesans"
)

func pixelAt(fb hal.Framebuffer, x, y int) uint16 {
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x*2
	return uint16(buf[off]) | uint16(buf[off+1])<<8
}

func rgb(c color.RGBA) uint16 { return hal.RGB565(c.R, c.G, c.B) }

func countPixels(fb hal.Framebuffer, r image.Rectangle, want uint16) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if pixelAt(fb, x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestNewRendererRejectsMissingFramebuffer(t *testing.T) {
	if _, err := NewRenderer(nil, DefaultTheme); err == nil {
		t.Fatal("NewRenderer(nil) err = nil, want error")
	}
}

func TestRenderPaintsRegions(t *testing.T) {
	fb := hal.NewFramebuffer(360, 640)
	r, err := NewRenderer(fb, DefaultTheme)
	if err != nil {
		t.Fatalf("NewRenderer() err = %v", err)
	}
	if err := r.Render("12.0", nil); err != nil {
		t.Fatalf("Render() err = %v", err)
	}

	l := r.Layout()
	if got := pixelAt(fb, 0, 0); got != rgb(DefaultTheme.Background) {
		t.Fatalf("background pixel = %#04x, want %#04x", got, rgb(DefaultTheme.Background))
	}
	if got := pixelAt(fb, l.Display.Min.X, l.Display.Min.Y); got != rgb(DefaultTheme.Display.BG) {
		t.Fatalf("display pixel = %#04x", got)
	}

	for _, b := range l.Buttons {
		want := rgb(DefaultTheme.swatch(b.Kind).BG)
		if got := pixelAt(fb, b.Rect.Min.X, b.Rect.Min.Y); got != want {
			t.Fatalf("button %s corner = %#04x, want %#04x", b.Key, got, want)
		}
		if n := countPixels(fb, b.Rect, rgb(DefaultTheme.swatch(b.Kind).FG)); n == 0 {
			t.Fatalf("button %s has no label pixels", b.Key)
		}
	}

	if n := countPixels(fb, l.Display, rgb(DefaultTheme.Display.FG)); n == 0 {
		t.Fatal("display text not drawn")
	}
}

func TestRenderDisplayRightAligned(t *testing.T) {
	fb := hal.NewFramebuffer(360, 640)
	r, err := NewRenderer(fb, DefaultTheme)
	if err != nil {
		t.Fatalf("NewRenderer() err = %v", err)
	}
	if err := r.Render("7", nil); err != nil {
		t.Fatalf("Render() err = %v", err)
	}
	d := r.Layout().Display
	fg := rgb(DefaultTheme.Display.FG)
	left := image.Rect(d.Min.X, d.Min.Y, d.Min.X+d.Dx()/2, d.Max.Y)
	right := image.Rect(d.Min.X+d.Dx()/2, d.Min.Y, d.Max.X, d.Max.Y)
	if countPixels(fb, left, fg) != 0 {
		t.Fatal("single digit drawn on the left half")
	}
	if countPixels(fb, right, fg) == 0 {
		t.Fatal("single digit missing from the right half")
	}
}

func TestRenderHeldButton(t *testing.T) {
	fb := hal.NewFramebuffer(360, 640)
	r, err := NewRenderer(fb, DefaultTheme)
	if err != nil {
		t.Fatalf("NewRenderer() err = %v", err)
	}
	if err := r.Render("0", []calc.Key{calc.Key5}); err != nil {
		t.Fatalf("Render() err = %v", err)
	}
	b, _ := r.Layout().Button(calc.Key5)
	want := rgb(pressed(DefaultTheme.Digit.BG))
	if got := pixelAt(fb, b.Rect.Min.X, b.Rect.Min.Y); got != want {
		t.Fatalf("held button corner = %#04x, want %#04x", got, want)
	}
	other, _ := r.Layout().Button(calc.Key6)
	if got := pixelAt(fb, other.Rect.Min.X, other.Rect.Min.Y); got != rgb(DefaultTheme.Digit.BG) {
		t.Fatalf("idle button corner = %#04x", got)
	}
}

func TestFitTextShrinksThenClips(t *testing.T) {
	f, s := fitText(displayFonts, "12", 1000)
	if f != &freesans.Bold24pt7b || s != "12" {
		t.Fatalf("short text: font %p, %q", f, s)
	}

	long := strings.Repeat("9", 12)
	f, s = fitText(displayFonts, long, textWidth(&freesans.Bold12pt7b, long))
	if s != long {
		t.Fatalf("medium text clipped to %q", s)
	}
	if textWidth(f, s) > textWidth(&freesans.Bold12pt7b, long) {
		t.Fatal("chosen font wider than allowed")
	}

	huge := "-0.30000000000000004"
	maxW := textWidth(&freesans.Bold9pt7b, "0000000004")
	f, s = fitText(displayFonts, huge, maxW)
	if f != &freesans.Bold9pt7b {
		t.Fatal("expected smallest font for clipped text")
	}
	if !strings.HasSuffix(huge, s) || len(s) >= len(huge) || textWidth(f, s) > maxW {
		t.Fatalf("clipped text = %q", s)
	}
}

func TestRenderIgnoresUnknownHeldKey(t *testing.T) {
	fb := hal.NewFramebuffer(360, 640)
	r, err := NewRenderer(fb, DefaultTheme)
	if err != nil {
		t.Fatalf("NewRenderer() err = %v", err)
	}
	if err := r.Render("0", []calc.Key{calc.KeyNone, calc.KeyEquals}); err != nil {
		t.Fatalf("Render() err = %v", err)
	}
	eq, _ := r.Layout().Button(calc.KeyEquals)
	if got, want := pixelAt(fb, eq.Rect.Min.X, eq.Rect.Min.Y), rgb(pressed(DefaultTheme.Operator.BG)); got != want {
		t.Fatalf("held corner %#04x, want %#04x", got, want)
	}
	c, _ := r.Layout().Button(calc.KeyClear)
	if got, want := pixelAt(fb, c.Rect.Min.X, c.Rect.Min.Y), rgb(DefaultTheme.Function.BG); got != want {
		t.Fatalf("C corner = %#04x, want %#04x", got, want)
	}
}
