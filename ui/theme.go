package ui

import "image/color"

// ButtonKind selects the palette entry used for a button.
type ButtonKind uint8

const (
	KindDigit ButtonKind = iota
	KindFunction
	KindOperator
)

// Swatch is a background/foreground pair.
type Swatch struct {
	BG color.RGBA
	FG color.RGBA
}

// Theme holds every color the renderer uses.
type Theme struct {
	Background color.RGBA
	Display    Swatch
	Digit      Swatch
	Function   Swatch
	Operator   Swatch
}

// DefaultTheme is the dark keypad with light gray function keys and orange operators.
var DefaultTheme = Theme{
	Background: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	Display: Swatch{
		BG: color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF},
		FG: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	},
	Digit: Swatch{
		BG: color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF},
		FG: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	},
	Function: Swatch{
		BG: color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
		FG: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	},
	Operator: Swatch{
		BG: color.RGBA{R: 0xFF, G: 0x99, B: 0x00, A: 0xFF},
		FG: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	},
}

func (t Theme) swatch(k ButtonKind) Swatch {
	switch k {
	case KindFunction:
		return t.Function
	case KindOperator:
		return t.Operator
	default:
		return t.Digit
	}
}

// pressed lightens c toward white for a held button.
func pressed(c color.RGBA) color.RGBA {
	mix := func(v uint8) uint8 { return uint8((uint16(v)*5 + 0xFF*3) / 8) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
