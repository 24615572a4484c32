package ui

import (
	"errors"
	"image"
	"image/color"
	"strings"

	"pocketcalc/calc"
	"pocketcalc/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

var errNoFramebuffer = errors.New("ui: no RGB565 framebuffer")

// displayFonts are tried largest first until the display text fits.
var displayFonts = []*tinyfont.Font{
	&freesans.Bold24pt7b,
	&freesans.Bold18pt7b,
	&freesans.Bold12pt7b,
	&freesans.Bold9pt7b,
}

var labelFonts = []*tinyfont.Font{
	&freesans.Bold18pt7b,
	&freesans.Bold12pt7b,
	&freesans.Bold9pt7b,
}

// Renderer draws the display and keypad into a framebuffer.
type Renderer struct {
	fb     hal.Framebuffer
	d      *fbDisplay
	theme  Theme
	layout Layout
}

// NewRenderer lays out the keypad for the framebuffer size.
func NewRenderer(fb hal.Framebuffer, theme Theme) (*Renderer, error) {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 || fb.Buffer() == nil {
		return nil, errNoFramebuffer
	}
	return &Renderer{
		fb:     fb,
		d:      newFBDisplay(fb),
		theme:  theme,
		layout: NewLayout(fb.Width(), fb.Height()),
	}, nil
}

func (r *Renderer) Layout() Layout { return r.layout }

// Render draws a full frame: the display text right-aligned and every button,
// with held buttons highlighted.
func (r *Renderer) Render(text string, held []calc.Key) error {
	r.d.fillRect(image.Rect(0, 0, r.layout.Width, r.layout.Height), r.theme.Background)
	r.renderDisplay(text)
	for _, b := range r.layout.Buttons {
		r.renderButton(b, false)
	}
	for _, k := range held {
		if b, ok := r.layout.Button(k); ok {
			r.renderButton(b, true)
		}
	}
	return r.fb.Present()
}

func (r *Renderer) renderDisplay(text string) {
	rect := r.layout.Display
	if rect.Empty() {
		return
	}
	r.d.fillRect(rect, r.theme.Display.BG)

	pad := r.layout.Gap * 2
	maxW := rect.Dx() - 2*pad
	f, s := fitText(displayFonts, text, maxW)
	if s == "" {
		return
	}
	w := textWidth(f, s)
	x := rect.Max.X - pad - w
	r.drawText(f, x, baselineFor(f, rect), s, r.theme.Display.FG)
}

func (r *Renderer) renderButton(b Button, held bool) {
	sw := r.theme.swatch(b.Kind)
	bg := sw.BG
	if held {
		bg = pressed(bg)
	}
	r.d.fillRect(b.Rect, bg)

	if drawIcon(r.d, b.Key, b.Rect, sw.FG) {
		return
	}
	label := b.Key.Label()
	f, s := fitText(labelFonts, label, b.Rect.Dx()-4)
	if s == "" {
		return
	}
	x := b.Rect.Min.X + (b.Rect.Dx()-textWidth(f, s))/2
	r.drawText(f, x, baselineFor(f, b.Rect), s, sw.FG)
}

func (r *Renderer) drawText(f tinyfont.Fonter, x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(r.d, f, int16(x), int16(y), s, c)
}

// fitText picks the first font that fits s in maxW pixels. When none does,
// it keeps the smallest font and drops leading characters so the end of the
// number stays visible.
func fitText(fonts []*tinyfont.Font, s string, maxW int) (tinyfont.Fonter, string) {
	if len(fonts) == 0 || maxW <= 0 {
		return nil, ""
	}
	for _, f := range fonts {
		if textWidth(f, s) <= maxW {
			return f, s
		}
	}
	f := fonts[len(fonts)-1]
	rs := []rune(s)
	for len(rs) > 0 && textWidth(f, string(rs)) > maxW {
		rs = rs[1:]
	}
	return f, string(rs)
}

func textWidth(f tinyfont.Fonter, s string) int {
	if f == nil || s == "" {
		return 0
	}
	_, outbox := tinyfont.LineWidth(f, s)
	return int(outbox)
}

// baselineFor centers digit-height glyphs vertically inside rect.
func baselineFor(f tinyfont.Fonter, rect image.Rectangle) int {
	info := f.GetGlyph('0').Info()
	top := int(info.YOffset)
	h := int(info.Height)
	if h == 0 {
		h = int(f.GetYAdvance())
		top = -h
	}
	cy := rect.Min.Y + rect.Dy()/2
	return cy - top - h/2
}

// RenderLines draws black text lines on white, top to bottom, clipping what
// does not fit. It needs no layout, so it works as a last-resort screen.
func RenderLines(fb hal.Framebuffer, lines []string) error {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 || fb.Buffer() == nil {
		return errNoFramebuffer
	}
	fb.ClearRGB(0xFF, 0xFF, 0xFF)

	d := newFBDisplay(fb)
	f := &freesans.Regular9pt7b
	lineH := int(f.GetYAdvance())
	if lineH <= 0 {
		lineH = 16
	}
	fg := color.RGBA{A: 0xFF}
	y := lineH
	for _, line := range lines {
		if y > fb.Height() {
			break
		}
		line = strings.ReplaceAll(line, "\t", "  ")
		s := clipEnd(f, line, fb.Width()-8)
		tinyfont.WriteLine(d, f, 4, int16(y), s, fg)
		y += lineH
	}
	return fb.Present()
}

// clipEnd keeps the beginning of s that fits in maxW.
func clipEnd(f tinyfont.Fonter, s string, maxW int) string {
	rs := []rune(s)
	for len(rs) > 0 && textWidth(f, string(rs)) > maxW {
		rs = rs[:len(rs)-1]
	}
	return string(rs)
}
