//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostTouch struct {
	ch  chan TouchEvent
	ids []ebiten.TouchID
}

func newHostTouch() *hostTouch {
	return &hostTouch{ch: make(chan TouchEvent, 64)}
}

func (t *hostTouch) Events() <-chan TouchEvent { return t.ch }

func (t *hostTouch) emit(ev TouchEvent) {
	select {
	case t.ch <- ev:
	default:
	}
}

// poll runs once per ebiten tick. Positions are in layout (framebuffer) coordinates.
func (t *hostTouch) poll() {
	t.ids = inpututil.AppendJustPressedTouchIDs(t.ids[:0])
	for _, id := range t.ids {
		x, y := ebiten.TouchPosition(id)
		t.emit(TouchEvent{ID: int(id), X: x, Y: y, Press: true})
	}
	t.ids = inpututil.AppendJustReleasedTouchIDs(t.ids[:0])
	for _, id := range t.ids {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		t.emit(TouchEvent{ID: int(id), X: x, Y: y, Press: false})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		t.emit(TouchEvent{ID: MouseTouchID, X: x, Y: y, Press: true})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		t.emit(TouchEvent{ID: MouseTouchID, X: x, Y: y, Press: false})
	}
}
