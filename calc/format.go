package calc

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v the way the display shows numbers: the shortest
// decimal that round-trips, with ".0" on integral values, and exponent form
// once the decimal exponent drops below -4 or reaches 16.
//
//	12      -> "12.0"
//	0.5     -> "0.5"
//	1e16    -> "1e+16"
//	0.00001 -> "1e-05"
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	// e.g. "-1.2345e+03"
	e := strconv.FormatFloat(v, 'e', -1, 64)
	sign := ""
	if e[0] == '-' {
		sign = "-"
		e = e[1:]
	}
	mant, expPart, _ := strings.Cut(e, "e")
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		return sign + strconv.FormatFloat(math.Abs(v), 'g', -1, 64)
	}
	digits := strings.Replace(mant, ".", "", 1)

	// decpt is the position of the decimal point relative to digits.
	decpt := exp + 1
	if v == 0 {
		return sign + "0.0"
	}
	if decpt > -4 && decpt <= 16 {
		return sign + fixed(digits, decpt)
	}
	return sign + scientific(digits, exp)
}

func fixed(digits string, decpt int) string {
	switch {
	case decpt <= 0:
		return "0." + strings.Repeat("0", -decpt) + digits
	case decpt >= len(digits):
		return digits + strings.Repeat("0", decpt-len(digits)) + ".0"
	default:
		return digits[:decpt] + "." + digits[decpt:]
	}
}

func scientific(digits string, exp int) string {
	var b strings.Builder
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('e')
	if exp < 0 {
		b.WriteByte('-')
		exp = -exp
	} else {
		b.WriteByte('+')
	}
	if exp < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}
