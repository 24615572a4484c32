//go:build cgo

package hal

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	clickSampleRate = 44100
	clickFreqHz     = 1800
	clickSamples    = clickSampleRate / 50 // 20ms
)

// hostAudio plays a short key click through Ebiten's audio package.
type hostAudio struct {
	mu     sync.Mutex
	ctx    *audio.Context
	player *audio.Player
	volume float64
}

func newHostAudio(volume float64) *hostAudio {
	return &hostAudio{volume: volume}
}

func (a *hostAudio) Click() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.player == nil {
		a.ctx = audio.CurrentContext()
		if a.ctx == nil {
			a.ctx = audio.NewContext(clickSampleRate)
		}
		if a.ctx.SampleRate() != clickSampleRate {
			return
		}
		a.player = a.ctx.NewPlayerFromBytes(clickPCM())
		a.player.SetVolume(a.volume)
	}
	if err := a.player.Rewind(); err != nil {
		return
	}
	a.player.Play()
}

// clickPCM renders a decaying sine burst as 16-bit little-endian stereo.
func clickPCM() []byte {
	buf := make([]byte, clickSamples*4)
	for i := 0; i < clickSamples; i++ {
		t := float64(i) / clickSampleRate
		env := math.Exp(-t * 250)
		v := int16(math.Sin(2*math.Pi*clickFreqHz*t) * env * 0.6 * math.MaxInt16)
		off := i * 4
		buf[off+0] = byte(v)
		buf[off+1] = byte(uint16(v) >> 8)
		buf[off+2] = byte(v)
		buf[off+3] = byte(uint16(v) >> 8)
	}
	return buf
}
