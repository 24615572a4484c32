//go:build cgo

package hal

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards pointer input.
// It blocks until the window closes or the app step returns ErrStop.
func RunWindow(opts Options, newApp func(HAL) func() error) error {
	g := newHostGame(opts, newApp)
	fb := g.h.fb
	ebiten.SetWindowTitle(g.h.opts.Title)
	ebiten.SetWindowSize(fb.width*g.h.opts.Scale, fb.height*g.h.opts.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

// NewGame returns the ebiten.Game used by RunWindow, for drivers that own the
// run loop themselves (ebitenmobile).
func NewGame(opts Options, newApp func(HAL) func() error) ebiten.Game {
	return newHostGame(opts, newApp)
}

func newHostGame(opts Options, newApp func(HAL) func() error) *hostGame {
	h := newHost(opts)
	return &hostGame{h: h, step: newApp(h)}
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.touch.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrStop) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)
	expandRGB565(g.img.Pix, g.scratch)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
