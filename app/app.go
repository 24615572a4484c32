package app

import (
	"fmt"

	"pocketcalc/calc"
	"pocketcalc/hal"
	"pocketcalc/internal/buildinfo"
	"pocketcalc/ui"
)

type Config struct {
	// Script is pressed one key per step before touch input is read.
	Script []calc.Key
	// ExitAfterScript stops the run loop once Script is exhausted.
	ExitAfterScript bool
	// Trace logs every key press with the resulting display.
	Trace bool
	Theme ui.Theme
}

// App owns the calculator state and connects it to the HAL.
type App struct {
	h   hal.HAL
	cfg Config

	state calc.State

	fb       hal.Framebuffer
	renderer *ui.Renderer
	touches  <-chan hal.TouchEvent
	audio    hal.Audio

	held   map[int]calc.Key
	script []calc.Key
	dirty  bool

	onPanic func(panicInfo)
}

// New initializes the app with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{Theme: ui.DefaultTheme})
}

// NewWithConfig initializes the app and returns its step function.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a := newApp(h, cfg)
	return a.Step
}

func newApp(h hal.HAL, cfg Config) *App {
	if cfg.Theme == (ui.Theme{}) {
		cfg.Theme = ui.DefaultTheme
	}
	a := &App{
		h:      h,
		cfg:    cfg,
		state:  calc.New(),
		held:   make(map[int]calc.Key),
		script: cfg.Script,
		dirty:  true,
	}
	a.logf("pocketcalc %s", buildinfo.Short())

	if d := h.Display(); d != nil {
		a.fb = d.Framebuffer()
	}
	if a.fb != nil {
		r, err := ui.NewRenderer(a.fb, cfg.Theme)
		if err != nil {
			a.logf("display disabled: %v", err)
		} else {
			a.renderer = r
		}
	}
	if in := h.Input(); in != nil {
		if t := in.Touch(); t != nil {
			a.touches = t.Events()
		}
	}
	a.audio = h.Audio()
	installPanicHandler(a)
	return a
}

// Display returns the current display text.
func (a *App) Display() string { return a.state.Display() }

// State returns the current calculator state.
func (a *App) State() calc.State { return a.state }

// Step handles pending input and redraws when something changed.
func (a *App) Step() (err error) {
	defer a.recoverStep(&err)

	if len(a.script) > 0 {
		a.Press(a.script[0])
		a.script = a.script[1:]
		if len(a.script) == 0 {
			a.logf("display: %s", a.state.Display())
		}
	} else if a.cfg.ExitAfterScript {
		a.render()
		return hal.ErrStop
	}

	a.drainTouches()
	a.render()
	return nil
}

// Press applies one key press.
func (a *App) Press(k calc.Key) {
	a.state = a.state.Press(k)
	a.dirty = true
	if a.audio != nil {
		a.audio.Click()
	}
	if a.cfg.Trace {
		a.logf("key=%s display=%s", k, a.state.Display())
	}
}

func (a *App) drainTouches() {
	if a.touches == nil {
		return
	}
	for {
		select {
		case ev := <-a.touches:
			a.handleTouch(ev)
		default:
			return
		}
	}
}

// handleTouch fires the key on touch-down and tracks held buttons for highlighting.
func (a *App) handleTouch(ev hal.TouchEvent) {
	if !ev.Press {
		if _, ok := a.held[ev.ID]; ok {
			delete(a.held, ev.ID)
			a.dirty = true
		}
		return
	}
	if a.renderer == nil {
		return
	}
	b, ok := a.renderer.Layout().HitTest(ev.X, ev.Y)
	if !ok {
		return
	}
	a.held[ev.ID] = b.Key
	a.Press(b.Key)
}

func (a *App) heldKeys() []calc.Key {
	if len(a.held) == 0 {
		return nil
	}
	keys := make([]calc.Key, 0, len(a.held))
	for _, k := range a.held {
		keys = append(keys, k)
	}
	return keys
}

func (a *App) render() {
	if !a.dirty || a.renderer == nil {
		return
	}
	a.dirty = false
	if err := a.renderer.Render(a.state.Display(), a.heldKeys()); err != nil {
		a.logf("render: %v", err)
	}
}

func (a *App) logf(format string, args ...any) {
	if a.h == nil {
		return
	}
	if l := a.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}
