package ui

import (
	"image"
	"image/color"

	"pocketcalc/calc"
)

// The bundled fonts only cover 7-bit ASCII, so these labels are drawn as strokes.
func drawIcon(d *fbDisplay, k calc.Key, rect image.Rectangle, c color.RGBA) bool {
	side := rect.Dx()
	if rect.Dy() < side {
		side = rect.Dy()
	}
	s := side / 4
	if s < 4 {
		s = 4
	}
	t := s / 6
	if t < 2 {
		t = 2
	}
	cx := rect.Min.X + rect.Dx()/2
	cy := rect.Min.Y + rect.Dy()/2

	switch k {
	case calc.KeySign:
		a := s / 3
		py := cy - s/3
		d.drawLine(cx-a, py, cx+a, py, t, c)
		d.drawLine(cx, py-a, cx, py+a, t, c)
		my := cy + s/2
		d.drawLine(cx-a, my, cx+a, my, t, c)
	case calc.KeyMultiply:
		a := s / 2
		d.drawLine(cx-a, cy-a, cx+a, cy+a, t, c)
		d.drawLine(cx-a, cy+a, cx+a, cy-a, t, c)
	case calc.KeyDivide:
		a := s / 2
		d.drawLine(cx-a, cy, cx+a, cy, t, c)
		dot := t + 1
		d.fillRect(image.Rect(cx-dot/2, cy-a-dot/2, cx-dot/2+dot, cy-a-dot/2+dot), c)
		d.fillRect(image.Rect(cx-dot/2, cy+a-dot/2, cx-dot/2+dot, cy+a-dot/2+dot), c)
	case calc.KeyBackspace:
		h := s / 2
		l := image.Pt(cx-s, cy)
		tl := image.Pt(cx-h, cy-h)
		tr := image.Pt(cx+s-h/2, cy-h)
		br := image.Pt(cx+s-h/2, cy+h)
		bl := image.Pt(cx-h, cy+h)
		for _, seg := range [][2]image.Point{{l, tl}, {tl, tr}, {tr, br}, {br, bl}, {bl, l}} {
			d.drawLine(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y, t, c)
		}
		xc := cx + s/4 - h/4
		a := h / 2
		d.drawLine(xc-a, cy-a, xc+a, cy+a, t, c)
		d.drawLine(xc-a, cy+a, xc+a, cy-a, t, c)
	default:
		return false
	}
	return true
}
