package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Options configures the host HAL.
type Options struct {
	Width  int
	Height int

	// Scale multiplies the window size; the framebuffer stays Width x Height.
	Scale int
	Title string

	Mute   bool
	Volume float64

	// Log receives log lines; nil means stdout.
	Log io.Writer
}

const (
	DefaultWidth  = 360
	DefaultHeight = 640
)

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Title == "" {
		o.Title = "Calculator"
	}
	if o.Volume <= 0 || o.Volume > 1 {
		o.Volume = 0.5
	}
	if o.Log == nil {
		o.Log = os.Stdout
	}
	return o
}

type hostHAL struct {
	opts   Options
	logger *hostLogger
	fb     *hostFramebuffer
	touch  *hostTouch
	aud    Audio
}

func newHost(opts Options) *hostHAL {
	opts = opts.withDefaults()
	var aud Audio = nullAudio{}
	if !opts.Mute {
		aud = newHostAudio(opts.Volume)
	}
	return &hostHAL{
		opts:   opts,
		logger: &hostLogger{w: opts.Log},
		fb:     newHostFramebuffer(opts.Width, opts.Height),
		touch:  newHostTouch(),
		aud:    aud,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{touch: h.touch} }
func (h *hostHAL) Audio() Audio     { return h.aud }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	touch *hostTouch
}

func (in hostInput) Touch() Touch { return in.touch }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type nullAudio struct{}

func (nullAudio) Click() {}
