package ui

import (
	"image"

	"pocketcalc/calc"
)

const (
	gridCols = 4
	gridRows = 5
)

// Button is one cell of the keypad.
type Button struct {
	Key  calc.Key
	Kind ButtonKind
	Rect image.Rectangle
}

// keypad lists the buttons row by row, top to bottom.
var keypad = [gridRows * gridCols]struct {
	key  calc.Key
	kind ButtonKind
}{
	{calc.KeyClear, KindFunction}, {calc.KeySign, KindFunction}, {calc.KeyPercent, KindFunction}, {calc.KeyDivide, KindOperator},
	{calc.Key7, KindDigit}, {calc.Key8, KindDigit}, {calc.Key9, KindDigit}, {calc.KeyMultiply, KindOperator},
	{calc.Key4, KindDigit}, {calc.Key5, KindDigit}, {calc.Key6, KindDigit}, {calc.KeySubtract, KindOperator},
	{calc.Key1, KindDigit}, {calc.Key2, KindDigit}, {calc.Key3, KindDigit}, {calc.KeyAdd, KindOperator},
	{calc.Key0, KindDigit}, {calc.KeyDecimal, KindDigit}, {calc.KeyBackspace, KindFunction}, {calc.KeyEquals, KindOperator},
}

// Layout places the display and the keypad inside a w x h surface.
type Layout struct {
	Width   int
	Height  int
	Gap     int
	Display image.Rectangle
	Buttons []Button
}

// NewLayout splits the surface into a display (top quarter) and a 5x4 grid of
// equally sized buttons, with a uniform gap as padding and spacing.
func NewLayout(w, h int) Layout {
	l := Layout{Width: w, Height: h}
	if w <= 0 || h <= 0 {
		return l
	}

	gap := w / 36
	if gap < 2 {
		gap = 2
	}
	l.Gap = gap

	innerW := w - 2*gap
	innerH := h - 2*gap - gap
	if innerW <= 0 || innerH <= 0 {
		return l
	}

	dispH := innerH / 4
	l.Display = image.Rect(gap, gap, gap+innerW, gap+dispH)

	gridTop := l.Display.Max.Y + gap
	gridH := h - gap - gridTop
	cellW := (innerW - (gridCols-1)*gap) / gridCols
	cellH := (gridH - (gridRows-1)*gap) / gridRows
	if cellW <= 0 || cellH <= 0 {
		return l
	}

	l.Buttons = make([]Button, 0, len(keypad))
	for i, b := range keypad {
		row := i / gridCols
		col := i % gridCols
		x0 := gap + col*(cellW+gap)
		y0 := gridTop + row*(cellH+gap)
		l.Buttons = append(l.Buttons, Button{
			Key:  b.key,
			Kind: b.kind,
			Rect: image.Rect(x0, y0, x0+cellW, y0+cellH),
		})
	}
	return l
}

// HitTest returns the button under (x, y). Gaps between buttons hit nothing.
func (l Layout) HitTest(x, y int) (Button, bool) {
	p := image.Pt(x, y)
	for _, b := range l.Buttons {
		if p.In(b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}

// Button returns the layout cell for k.
func (l Layout) Button(k calc.Key) (Button, bool) {
	for _, b := range l.Buttons {
		if b.Key == k {
			return b, true
		}
	}
	return Button{}, false
}
