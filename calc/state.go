package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrorText is shown after a failed calculation until the state is cleared.
const ErrorText = "Error"

// Op is a binary operation awaiting its right operand.
type Op uint8

const (
	OpNone Op = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

var (
	errDivideByZero = errors.New("division by zero")
	errBadOperand   = errors.New("operand is not a number")
)

// State is the calculator state machine.
//
// The zero value is not ready for use; start from New. Every operation has a
// value receiver and returns the next state, so callers own exactly one State
// and replace it after each press.
type State struct {
	current  string
	previous float64
	op       Op
	awaiting bool
	failed   bool
}

// New returns the initial state: display "0", nothing pending.
func New() State {
	return State{current: "0"}
}

// Display returns the text the presentation layer renders verbatim.
func (s State) Display() string {
	if s.current == "" {
		return "0"
	}
	return s.current
}

// Pending returns the pending operation and its left operand.
func (s State) Pending() (Op, float64, bool) {
	if s.op == OpNone {
		return OpNone, 0, false
	}
	return s.op, s.previous, true
}

// AwaitingEntry reports whether the next digit starts a new number.
func (s State) AwaitingEntry() bool { return s.awaiting }

// Failed reports whether the display shows ErrorText.
func (s State) Failed() bool { return s.failed }

// leaveError returns the initial state when s is in the error state; any key
// pressed on top of "Error" behaves as if Clear had been pressed first.
func (s State) leaveError() State {
	if s.failed {
		return New()
	}
	return s
}

func (s State) fail() State {
	return State{current: ErrorText, failed: true}
}

// Digit appends d (0–9) to the current entry.
func (s State) Digit(d byte) State {
	s = s.leaveError()
	if d > 9 {
		return s
	}
	ch := string(rune('0' + d))
	if s.awaiting {
		s.current = ch
		s.awaiting = false
		return s
	}
	if s.current == "0" {
		s.current = ch
	} else {
		s.current += ch
	}
	return s
}

// Decimal adds a decimal point unless the entry already has one.
// Right after an operator or "=", it starts a fresh "0." entry.
func (s State) Decimal() State {
	s = s.leaveError()
	if s.awaiting {
		s.current = "0."
		s.awaiting = false
		return s
	}
	if !strings.Contains(s.current, ".") {
		s.current += "."
	}
	return s
}

// ToggleSign negates the current value. "0" stays "0".
func (s State) ToggleSign() State {
	s = s.leaveError()
	if s.current == "0" {
		return s
	}
	v, err := parseOperand(s.current)
	if err != nil {
		return s.fail()
	}
	s.current = FormatNumber(-v)
	return s
}

// Percent divides the current value by 100.
func (s State) Percent() State {
	s = s.leaveError()
	v, err := parseOperand(s.current)
	if err != nil {
		return s.fail()
	}
	s.current = FormatNumber(v / 100)
	return s
}

// Backspace drops the last character of the entry.
func (s State) Backspace() State {
	s = s.leaveError()
	if len(s.current) <= 1 {
		s.current = "0"
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s.current)
	s.current = s.current[:len(s.current)-size]
	if s.current == "" || s.current == "-" {
		s.current = "0"
	}
	return s
}

// Clear resets to the initial state.
func (s State) Clear() State {
	return New()
}

// SetOperation stores the current value as the left operand of op. A pending
// operation whose right operand has already been typed is resolved first, so
// chains evaluate left to right.
func (s State) SetOperation(op Op) State {
	s = s.leaveError()
	if op == OpNone {
		return s
	}
	if s.op != OpNone && !s.awaiting {
		s = s.Equals()
		if s.failed {
			return s
		}
	}
	v, err := parseOperand(s.current)
	if err != nil {
		return s.fail()
	}
	s.previous = v
	s.op = op
	s.awaiting = true
	return s
}

// Equals applies the pending operation. It is a no-op when nothing is pending.
func (s State) Equals() State {
	s = s.leaveError()
	if s.op == OpNone {
		return s
	}
	b, err := parseOperand(s.current)
	if err != nil {
		return s.fail()
	}
	res, err := apply(s.op, s.previous, b)
	if err != nil {
		return s.fail()
	}
	s.current = FormatNumber(res)
	s.previous = 0
	s.op = OpNone
	s.awaiting = true
	return s
}

func apply(op Op, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, errDivideByZero
		}
		return a / b, nil
	default:
		return 0, errBadOperand
	}
}

func parseOperand(s string) (float64, error) {
	// ParseFloat would also accept hex floats and underscores.
	if s == "" || strings.ContainsAny(s, "_xXpP") {
		return 0, errBadOperand
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, errBadOperand
	}
	return v, nil
}
