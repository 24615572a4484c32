//go:build !cgo

package hal

// hostAudio is a stub when CGO/window backends are unavailable.
type hostAudio struct{}

func newHostAudio(volume float64) hostAudio {
	_ = volume
	return hostAudio{}
}

func (hostAudio) Click() {}
