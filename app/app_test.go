package app

import (
	"image"
	"strings"
	"sync"
	"testing"

	"pocketcalc/calc"
	"pocketcalc/hal"
	"pocketcalc/ui"
)

type testLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *testLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *testLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *testLogger) has(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if line == s {
			return true
		}
	}
	return false
}

type testTouch struct{ ch chan hal.TouchEvent }

func (t testTouch) Events() <-chan hal.TouchEvent { return t.ch }

type testAudio struct{ clicks int }

func (a *testAudio) Click() { a.clicks++ }

type testHAL struct {
	log   *testLogger
	fb    hal.Framebuffer
	touch testTouch
	audio *testAudio
}

func newTestHAL() *testHAL {
	return &testHAL{
		log:   &testLogger{},
		fb:    hal.NewFramebuffer(360, 640),
		touch: testTouch{ch: make(chan hal.TouchEvent, 16)},
		audio: &testAudio{},
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h }
func (h *testHAL) Input() hal.Input     { return h }
func (h *testHAL) Audio() hal.Audio     { return h.audio }

func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Touch() hal.Touch             { return h.touch }

func center(r image.Rectangle) image.Point {
	return r.Min.Add(r.Size().Div(2))
}

func tap(t *testing.T, h *testHAL, a *App, k calc.Key) {
	t.Helper()
	b, ok := a.renderer.Layout().Button(k)
	if !ok {
		t.Fatalf("no button for %s", k)
	}
	p := center(b.Rect)
	h.touch.ch <- hal.TouchEvent{ID: 1, X: p.X, Y: p.Y, Press: true}
	h.touch.ch <- hal.TouchEvent{ID: 1, X: p.X, Y: p.Y, Press: false}
	if err := a.Step(); err != nil {
		t.Fatalf("Step() err = %v", err)
	}
}

func TestTouchDrivesCalculator(t *testing.T) {
	h := newTestHAL()
	a := newApp(h, Config{})
	if a.renderer == nil {
		t.Fatal("expected renderer")
	}

	for _, k := range []calc.Key{calc.Key3, calc.KeyAdd, calc.Key4, calc.KeyAdd, calc.Key5, calc.KeyEquals} {
		tap(t, h, a, k)
	}
	if got := a.Display(); got != "12.0" {
		t.Fatalf("Display() = %q, want %q", got, "12.0")
	}
	if h.audio.clicks != 6 {
		t.Fatalf("clicks = %d, want 6", h.audio.clicks)
	}
	if len(a.held) != 0 {
		t.Fatalf("held = %v after release, want none", a.held)
	}
}

func TestTouchOutsideButtonsIgnored(t *testing.T) {
	h := newTestHAL()
	a := newApp(h, Config{})
	d := a.renderer.Layout().Display
	h.touch.ch <- hal.TouchEvent{ID: 2, X: d.Min.X + 3, Y: d.Min.Y + 3, Press: true}
	if err := a.Step(); err != nil {
		t.Fatalf("Step() err = %v", err)
	}
	if h.audio.clicks != 0 || a.Display() != "0" {
		t.Fatalf("display tap changed state: clicks=%d display=%q", h.audio.clicks, a.Display())
	}
}

func TestHeldButtonTrackedUntilRelease(t *testing.T) {
	h := newTestHAL()
	a := newApp(h, Config{})
	b, _ := a.renderer.Layout().Button(calc.Key9)
	p := center(b.Rect)

	h.touch.ch <- hal.TouchEvent{ID: 7, X: p.X, Y: p.Y, Press: true}
	if err := a.Step(); err != nil {
		t.Fatalf("Step() err = %v", err)
	}
	if got := a.heldKeys(); len(got) != 1 || got[0] != calc.Key9 {
		t.Fatalf("heldKeys() = %v, want [9]", got)
	}

	h.touch.ch <- hal.TouchEvent{ID: 7, X: p.X, Y: p.Y, Press: false}
	if err := a.Step(); err != nil {
		t.Fatalf("Step() err = %v", err)
	}
	if got := a.heldKeys(); len(got) != 0 {
		t.Fatalf("heldKeys() = %v after release", got)
	}
}

func TestScriptRunsThenStops(t *testing.T) {
	h := newTestHAL()
	keys, err := calc.ParseKeys("5 ÷ 0 =")
	if err != nil {
		t.Fatalf("ParseKeys() err = %v", err)
	}
	step := NewWithConfig(h, Config{Script: keys, ExitAfterScript: true, Trace: true})

	var steps int
	for {
		err := step()
		if err == hal.ErrStop {
			break
		}
		if err != nil {
			t.Fatalf("step() err = %v", err)
		}
		steps++
		if steps > 10 {
			t.Fatal("script did not stop")
		}
	}
	if steps != len(keys) {
		t.Fatalf("steps = %d, want %d", steps, len(keys))
	}
	if !h.log.has("display: Error") {
		t.Fatalf("log = %v, want final display line", h.log.lines)
	}
	if !h.log.has("key=÷ display=5") {
		t.Fatalf("log = %v, want trace line", h.log.lines)
	}
}

func TestStartupLogsVersion(t *testing.T) {
	h := newTestHAL()
	_ = New(h)
	if len(h.log.lines) == 0 || !strings.HasPrefix(h.log.lines[0], "pocketcalc ") {
		t.Fatalf("log = %v, want startup banner", h.log.lines)
	}
}

func TestPanicInStepIsRecovered(t *testing.T) {
	h := newTestHAL()
	a := newApp(h, Config{Theme: ui.DefaultTheme})
	a.touches = nil
	a.script = []calc.Key{calc.Key1}
	a.audio = panicAudio{}

	err := a.Step()
	if err == nil || !strings.Contains(err.Error(), "panic") {
		t.Fatalf("Step() err = %v, want panic error", err)
	}
	if !h.log.has("pocketcalc panic: click failed") {
		t.Fatalf("log = %v, want panic line", h.log.lines)
	}
	buf := h.fb.Buffer()
	if buf[0] != 0xFF || buf[1] != 0xFF {
		t.Fatalf("panic screen not drawn: first pixel %#02x%02x", buf[1], buf[0])
	}
}

type panicAudio struct{}

func (panicAudio) Click() { panic("click failed") }

func TestNoDisplayStillCalculates(t *testing.T) {
	h := newTestHAL()
	h.fb = nil
	a := newApp(h, Config{Script: []calc.Key{calc.Key4, calc.KeyMultiply, calc.Key2, calc.KeyEquals}})
	for i := 0; i < 4; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("Step() err = %v", err)
		}
	}
	if got := a.Display(); got != "8.0" {
		t.Fatalf("Display() = %q, want %q", got, "8.0")
	}
}
