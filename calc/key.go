package calc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Key identifies one calculator button.
type Key uint8

const (
	KeyNone Key = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyDecimal
	KeySign
	KeyPercent
	KeyBackspace
	KeyClear
	KeyAdd
	KeySubtract
	KeyMultiply
	KeyDivide
	KeyEquals
)

var keyLabels = [...]string{
	KeyNone:      "",
	Key0:         "0",
	Key1:         "1",
	Key2:         "2",
	Key3:         "3",
	Key4:         "4",
	Key5:         "5",
	Key6:         "6",
	Key7:         "7",
	Key8:         "8",
	Key9:         "9",
	KeyDecimal:   ".",
	KeySign:      "±",
	KeyPercent:   "%",
	KeyBackspace: "⌫",
	KeyClear:     "C",
	KeyAdd:       "+",
	KeySubtract:  "-",
	KeyMultiply:  "×",
	KeyDivide:    "÷",
	KeyEquals:    "=",
}

// ASCII spellings accepted in addition to the button labels.
var keyAliases = map[string]Key{
	"+/-":  KeySign,
	"neg":  KeySign,
	"*":    KeyMultiply,
	"x":    KeyMultiply,
	"/":    KeyDivide,
	"<":    KeyBackspace,
	"bs":   KeyBackspace,
	"back": KeyBackspace,
	"del":  KeyBackspace,
	"ac":   KeyClear,
	"c":    KeyClear,
	"−":    KeySubtract,
}

// Label returns the text printed on the button.
func (k Key) Label() string {
	if int(k) >= len(keyLabels) {
		return ""
	}
	return keyLabels[k]
}

func (k Key) String() string {
	if l := k.Label(); l != "" {
		return l
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// IsDigit reports whether k is one of 0–9.
func (k Key) IsDigit() bool { return k >= Key0 && k <= Key9 }

// Digit returns the digit value of a digit key.
func (k Key) Digit() (byte, bool) {
	if !k.IsDigit() {
		return 0, false
	}
	return byte(k - Key0), true
}

// Op returns the binary operation bound to an operator key.
func (k Key) Op() Op {
	switch k {
	case KeyAdd:
		return OpAdd
	case KeySubtract:
		return OpSubtract
	case KeyMultiply:
		return OpMultiply
	case KeyDivide:
		return OpDivide
	default:
		return OpNone
	}
}

// ParseKey maps a button label or alias to its Key.
func ParseKey(label string) (Key, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return KeyNone, false
	}
	for k := Key0; k <= KeyEquals; k++ {
		if keyLabels[k] == label {
			return k, true
		}
	}
	if k, ok := keyAliases[strings.ToLower(label)]; ok {
		return k, true
	}
	return KeyNone, false
}

// ParseKeys splits a key script into keys. Whitespace-separated labels are
// matched with ParseKey; a token that is not a label is read left to right,
// taking the longest label or alias at each position, so "12+3=" and
// "1 2 + 3 =" are equivalent and "5+/-" is 5 then sign.
func ParseKeys(script string) ([]Key, error) {
	var out []Key
	for _, tok := range strings.Fields(script) {
		if k, ok := ParseKey(tok); ok {
			out = append(out, k)
			continue
		}
		keys, err := splitCompact(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, keys...)
	}
	return out, nil
}

// maxKeyRunes is the rune length of the longest label or alias.
var maxKeyRunes = func() int {
	n := 1
	for _, l := range keyLabels {
		n = max(n, utf8.RuneCountInString(l))
	}
	for a := range keyAliases {
		n = max(n, utf8.RuneCountInString(a))
	}
	return n
}()

func splitCompact(tok string) ([]Key, error) {
	var out []Key
	rs := []rune(tok)
	for i := 0; i < len(rs); {
		n := min(len(rs)-i, maxKeyRunes)
		for ; n > 0; n-- {
			if k, ok := ParseKey(string(rs[i : i+n])); ok {
				out = append(out, k)
				break
			}
		}
		if n == 0 {
			return nil, fmt.Errorf("parse keys: unknown key %q in %q", string(rs[i]), tok)
		}
		i += n
	}
	return out, nil
}

// Press applies one button press.
func (s State) Press(k Key) State {
	if d, ok := k.Digit(); ok {
		return s.Digit(d)
	}
	switch k {
	case KeyDecimal:
		return s.Decimal()
	case KeySign:
		return s.ToggleSign()
	case KeyPercent:
		return s.Percent()
	case KeyBackspace:
		return s.Backspace()
	case KeyClear:
		return s.Clear()
	case KeyAdd, KeySubtract, KeyMultiply, KeyDivide:
		return s.SetOperation(k.Op())
	case KeyEquals:
		return s.Equals()
	default:
		return s
	}
}

// PressAll applies keys in order.
func (s State) PressAll(keys ...Key) State {
	for _, k := range keys {
		s = s.Press(k)
	}
	return s
}
