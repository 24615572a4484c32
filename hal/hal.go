package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrStop is returned by an app step to end the run loop cleanly.
var ErrStop = errors.New("stop")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// TouchEvent is a pointer going down or up at a framebuffer position.
//
// ID distinguishes simultaneous touches; the mouse reports MouseTouchID.
type TouchEvent struct {
	ID    int
	X     int
	Y     int
	Press bool
}

// MouseTouchID is the TouchEvent.ID used for the primary mouse button.
const MouseTouchID = -1

// Touch provides pointer events (best-effort on each platform).
type Touch interface {
	Events() <-chan TouchEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Touch() Touch
}

// Audio plays short feedback sounds.
type Audio interface {
	Click()
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Audio() Audio
}
